package records

import "context"

// Module identifies one record type: its wire code, display title, backing
// table and the self-edit permission column that gates it.
type Module struct {
	Code       string
	Title      string
	Table      string
	PermColumn string
}

// ModuleOps bundles the typed operations for one module behind a uniform
// surface so handlers and the self-service flow never switch on the code.
type ModuleOps struct {
	Module   Module
	Decode   func(data []byte) (Approvable, error)
	Validate func(rec Approvable) []Issue
	List     func(ctx context.Context, db DBTX, q ListQuery) ([]Approvable, error)
	Insert   func(ctx context.Context, db DBTX, rec Approvable) (string, error)
	// Update rewrites the module-specific fields only. When editableBy is
	// non-empty the write is additionally scoped to that employee's
	// non-approved rows and reports false when nothing matched.
	Update func(ctx context.Context, db DBTX, rec Approvable, editableBy string) (bool, error)
}

// Registry holds the fixed set of modules, built once at startup.
type Registry struct {
	order []string
	ops   map[string]*ModuleOps
}

func NewRegistry(s *Store) *Registry {
	r := &Registry{ops: make(map[string]*ModuleOps)}
	for _, ops := range []*ModuleOps{
		educationOps(s),
		postingOps(s),
		deputationOps(s),
		aparOps(s),
		propertyOps(s),
		trainingOps(s),
		awardOps(s),
		payOps(s),
		incrementOps(s),
		leaveOps(s),
		allegationOps(s),
	} {
		r.order = append(r.order, ops.Module.Code)
		r.ops[ops.Module.Code] = ops
	}
	return r
}

// Lookup resolves a module code, ErrUnknownModule otherwise.
func (r *Registry) Lookup(code string) (*ModuleOps, error) {
	ops, ok := r.ops[code]
	if !ok {
		return nil, ErrUnknownModule
	}
	return ops, nil
}

// Modules returns the modules in registration order.
func (r *Registry) Modules() []Module {
	out := make([]Module, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.ops[code].Module)
	}
	return out
}
