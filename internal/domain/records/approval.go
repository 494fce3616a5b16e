// Package records implements the service-book workflow core: eleven
// record modules sharing one PENDING/APPROVED lifecycle, the per-employee
// self-edit permission matrix, and the self-service edit flow.
//
// The package does no locking of its own; a concurrent administrative
// approval and employee edit of the same row resolve last-write-wins at
// the database transaction boundary. That is an accepted limitation for
// this low-contention workload.
package records

import (
	"errors"
	"time"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
)

var (
	ErrUnknownModule    = errors.New("unknown record module")
	ErrPermissionDenied = errors.New("self-edit not permitted for this module")
)

// RecordMeta carries the fields every record variant shares: identity,
// owner and the approval lifecycle. The approver and approval timestamp
// are set if and only if the status is APPROVED.
type RecordMeta struct {
	ID             string     `json:"id,omitempty"`
	EmployeeID     string     `json:"employeeId,omitempty"`
	Status         string     `json:"status,omitempty"`
	ApprovedBy     string     `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time `json:"approvedAt,omitempty"`
	ReviewerRemark string     `json:"reviewerRemark,omitempty"`
	CreatedAt      time.Time  `json:"createdAt,omitempty"`
}

// Approvable is implemented by every record variant through its embedded
// RecordMeta, letting the state machine and the self-service handler
// operate polymorphically without reflection.
type Approvable interface {
	Meta() *RecordMeta
}

func (m *RecordMeta) Meta() *RecordMeta { return m }

func (m *RecordMeta) IsApproved() bool { return m.Status == StatusApproved }

// MarkApproved transitions to APPROVED, attributing the actor. Calling it
// again with the same actor is a no-op in effect.
func (m *RecordMeta) MarkApproved(actor string, at time.Time) {
	m.Status = StatusApproved
	m.ApprovedBy = actor
	m.ApprovedAt = &at
}

// ResetPending demotes the record to PENDING and clears the approval
// trail, including any reviewer remark.
func (m *RecordMeta) ResetPending() {
	m.Status = StatusPending
	m.ApprovedBy = ""
	m.ApprovedAt = nil
	m.ReviewerRemark = ""
}

// Issue is a field-level constraint violation attributed to a submitted
// row.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError rejects a whole submission; nothing is persisted when
// it is returned.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	return "record validation failed"
}
