package records

import (
	"testing"
	"time"
)

func TestMarkApproved(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	var m RecordMeta
	m.Status = StatusPending
	m.ReviewerRemark = "needs proof"

	m.MarkApproved("reviewer-1", at)

	if !m.IsApproved() {
		t.Fatalf("status = %q, want %q", m.Status, StatusApproved)
	}
	if m.ApprovedBy != "reviewer-1" {
		t.Errorf("approvedBy = %q, want reviewer-1", m.ApprovedBy)
	}
	if m.ApprovedAt == nil || !m.ApprovedAt.Equal(at) {
		t.Errorf("approvedAt = %v, want %v", m.ApprovedAt, at)
	}

	// approving again just re-stamps
	later := at.Add(time.Hour)
	m.MarkApproved("reviewer-1", later)
	if !m.IsApproved() || !m.ApprovedAt.Equal(later) {
		t.Errorf("re-approval not idempotent: status=%q at=%v", m.Status, m.ApprovedAt)
	}
}

func TestResetPending(t *testing.T) {
	at := time.Now().UTC()
	var m RecordMeta
	m.MarkApproved("reviewer-1", at)
	m.ReviewerRemark = "ok"

	m.ResetPending()

	if m.Status != StatusPending {
		t.Fatalf("status = %q, want %q", m.Status, StatusPending)
	}
	if m.ApprovedBy != "" || m.ApprovedAt != nil || m.ReviewerRemark != "" {
		t.Errorf("approval trail not cleared: by=%q at=%v remark=%q", m.ApprovedBy, m.ApprovedAt, m.ReviewerRemark)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Issues: []Issue{{Field: "degree", Reason: "is required"}}}
	if err.Error() != "record validation failed" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
