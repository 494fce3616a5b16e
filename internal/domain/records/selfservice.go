package records

import (
	"context"
	"encoding/json"
	"strconv"
)

// SelfService is the employee-facing edit flow: view a module scoped to
// the acting employee, or submit a batch of edits that all land PENDING.
type SelfService struct {
	Store    *Store
	Registry *Registry
}

func NewSelfService(store *Store, reg *Registry) *SelfService {
	return &SelfService{Store: store, Registry: reg}
}

// ModuleView is one module as the employee sees it: approved rows are
// read-only, the rest remain editable.
type ModuleView struct {
	Module   Module       `json:"module"`
	CanEdit  bool         `json:"canEdit"`
	Editable []Approvable `json:"editable"`
	Approved []Approvable `json:"approved"`
}

// LoadView lists the employee's rows for a module, partitioned by
// lifecycle state. Viewing needs no permission; only submitting does.
func (s *SelfService) LoadView(ctx context.Context, employeeID, code string) (*ModuleView, error) {
	ops, err := s.Registry.Lookup(code)
	if err != nil {
		return nil, err
	}
	canEdit, err := s.Store.CanEdit(ctx, employeeID, ops.Module)
	if err != nil {
		return nil, err
	}
	recs, err := ops.List(ctx, s.Store.DB, ListQuery{EmployeeID: employeeID})
	if err != nil {
		return nil, err
	}
	view := &ModuleView{
		Module:   ops.Module,
		CanEdit:  canEdit,
		Editable: []Approvable{},
		Approved: []Approvable{},
	}
	for _, rec := range recs {
		if rec.Meta().IsApproved() {
			view.Approved = append(view.Approved, rec)
		} else {
			view.Editable = append(view.Editable, rec)
		}
	}
	return view, nil
}

// SubmitInput is one portal submission for a single module. Rows without
// an id are inserts, rows with an id are updates, Delete lists ids to
// remove.
type SubmitInput struct {
	Rows   []json.RawMessage `json:"rows"`
	Delete []string          `json:"delete"`
}

type SubmitResult struct {
	Saved   int `json:"saved"`
	Deleted int `json:"deleted"`
}

// SubmitEdits applies a whole submission atomically. Ownership is forced
// to the acting employee, every saved row is reset to PENDING with its
// approval trail cleared, and deletes or updates that target APPROVED
// rows are skipped silently. On validation failure nothing is persisted.
func (s *SelfService) SubmitEdits(ctx context.Context, employeeID, code string, input SubmitInput) (*SubmitResult, error) {
	ops, err := s.Registry.Lookup(code)
	if err != nil {
		return nil, err
	}
	allowed, err := s.Store.CanEdit(ctx, employeeID, ops.Module)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrPermissionDenied
	}

	recs := make([]Approvable, 0, len(input.Rows))
	var issues []Issue
	for i, raw := range input.Rows {
		prefix := "rows[" + strconv.Itoa(i) + "]"
		rec, err := ops.Decode(raw)
		if err != nil {
			issues = append(issues, Issue{Field: prefix, Reason: "malformed row"})
			continue
		}
		for _, iss := range ops.Validate(rec) {
			issues = append(issues, Issue{Field: prefix + "." + iss.Field, Reason: iss.Reason})
		}
		recs = append(recs, rec)
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	tx, err := s.Store.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	deleted, err := s.Store.DeleteEditable(ctx, tx, ops.Module, employeeID, input.Delete)
	if err != nil {
		return nil, err
	}

	var savedIDs []string
	for _, rec := range recs {
		meta := rec.Meta()
		meta.EmployeeID = employeeID
		if meta.ID == "" {
			id, err := ops.Insert(ctx, tx, rec)
			if err != nil {
				return nil, err
			}
			savedIDs = append(savedIDs, id)
			continue
		}
		ok, err := ops.Update(ctx, tx, rec, employeeID)
		if err != nil {
			return nil, err
		}
		if ok {
			savedIDs = append(savedIDs, meta.ID)
		}
	}

	// Every row this submission touched goes back through review,
	// whatever status the client claimed for it.
	if _, err := s.Store.RevertToPending(ctx, tx, ops.Module, savedIDs, ""); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &SubmitResult{Saved: len(savedIDs), Deleted: int(deleted)}, nil
}
