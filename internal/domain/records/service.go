package records

import (
	"context"
	"errors"
	"time"
)

var ErrRecordNotFound = errors.New("record not found")

// Service is the administrative surface over all modules: unrestricted
// CRUD plus the bulk approval actions.
type Service struct {
	Store    *Store
	Registry *Registry
}

func NewService(store *Store, reg *Registry) *Service {
	return &Service{Store: store, Registry: reg}
}

func (s *Service) Modules() []Module {
	return s.Registry.Modules()
}

func (s *Service) List(ctx context.Context, code string, q ListQuery) ([]Approvable, error) {
	ops, err := s.Registry.Lookup(code)
	if err != nil {
		return nil, err
	}
	return ops.List(ctx, s.Store.DB, q)
}

func (s *Service) decodeValid(code string, data []byte) (*ModuleOps, Approvable, error) {
	ops, err := s.Registry.Lookup(code)
	if err != nil {
		return nil, nil, err
	}
	rec, err := ops.Decode(data)
	if err != nil {
		return nil, nil, &ValidationError{Issues: []Issue{{Field: "body", Reason: "malformed record"}}}
	}
	if meta := rec.Meta(); meta.EmployeeID == "" {
		return nil, nil, &ValidationError{Issues: []Issue{{Field: "employeeId", Reason: "is required"}}}
	}
	if issues := ops.Validate(rec); len(issues) > 0 {
		return nil, nil, &ValidationError{Issues: issues}
	}
	return ops, rec, nil
}

// Create inserts a record for any employee. New rows always start
// PENDING.
func (s *Service) Create(ctx context.Context, code string, data []byte) (string, error) {
	ops, rec, err := s.decodeValid(code, data)
	if err != nil {
		return "", err
	}
	return ops.Insert(ctx, s.Store.DB, rec)
}

// Update rewrites a record's own fields; the approval columns are left
// untouched, so correcting an approved row keeps it approved.
func (s *Service) Update(ctx context.Context, code, id string, data []byte) error {
	ops, rec, err := s.decodeValid(code, data)
	if err != nil {
		return err
	}
	rec.Meta().ID = id
	ok, err := ops.Update(ctx, s.Store.DB, rec, "")
	if err != nil {
		return err
	}
	if !ok {
		return ErrRecordNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, code, id string) error {
	ops, err := s.Registry.Lookup(code)
	if err != nil {
		return err
	}
	ok, err := s.Store.DeleteRecord(ctx, ops.Module, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRecordNotFound
	}
	return nil
}

// Approve marks the given rows APPROVED attributing the acting reviewer.
// Already-approved rows are re-stamped, which is harmless.
func (s *Service) Approve(ctx context.Context, code string, ids []string, actor string) (int64, error) {
	ops, err := s.Registry.Lookup(code)
	if err != nil {
		return 0, err
	}
	return s.Store.Approve(ctx, s.Store.DB, ops.Module, ids, actor, time.Now().UTC())
}

// Revert sends the given rows back to PENDING, recording an optional
// reviewer remark.
func (s *Service) Revert(ctx context.Context, code string, ids []string, remark string) (int64, error) {
	ops, err := s.Registry.Lookup(code)
	if err != nil {
		return 0, err
	}
	return s.Store.RevertToPending(ctx, s.Store.DB, ops.Module, ids, remark)
}
