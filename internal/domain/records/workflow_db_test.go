package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"servicebook/internal/platform/db"
)

func setupWorkflowStore(t *testing.T) (context.Context, *Store) {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(ctx, pool, filepath.Join("..", "..", "..", "migrations")); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
	return ctx, NewStore(pool)
}

func createTestEmployee(t *testing.T, ctx context.Context, s *Store, name string) string {
	t.Helper()
	var id string
	hrms := fmt.Sprintf("WF%d", time.Now().UnixNano())
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (hrms_id, name) VALUES ($1, $2) RETURNING id::text
  `, hrms, name).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create employee: %v", err)
	}
	t.Cleanup(func() {
		_, _ = s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	})
	return id
}

func createTestReviewer(t *testing.T, ctx context.Context, s *Store) string {
	t.Helper()
	var id string
	username := fmt.Sprintf("reviewer-%d", time.Now().UnixNano())
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (username, is_staff) VALUES ($1, TRUE) RETURNING id::text
  `, username).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create reviewer: %v", err)
	}
	t.Cleanup(func() {
		_, _ = s.DB.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	})
	return id
}

func loadAwardsView(t *testing.T, ctx context.Context, self *SelfService, employeeID string) *ModuleView {
	t.Helper()
	view, err := self.LoadView(ctx, employeeID, "awards")
	if err != nil {
		t.Fatalf("failed to load awards view: %v", err)
	}
	return view
}

func TestSelfServiceSubmitApprovalRoundTrip(t *testing.T) {
	ctx, store := setupWorkflowStore(t)
	registry := NewRegistry(store)
	self := NewSelfService(store, registry)
	svc := NewService(store, registry)

	emp := createTestEmployee(t, ctx, store, "Asha Kumari")
	other := createTestEmployee(t, ctx, store, "Rakesh Ranjan")
	reviewer := createTestReviewer(t, ctx, store)

	goldMedal := json.RawMessage(fmt.Sprintf(
		`{"name":"Gold Medal","year":2015,"employeeId":%q,"status":"APPROVED"}`, other))

	// Without a permission row the submission is refused outright.
	if _, err := self.SubmitEdits(ctx, emp, "awards", SubmitInput{Rows: []json.RawMessage{goldMedal}}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	view := loadAwardsView(t, ctx, self, emp)
	if view.CanEdit || len(view.Editable) != 0 || len(view.Approved) != 0 {
		t.Fatalf("refused submission must leave nothing behind: %+v", view)
	}

	if err := store.SetPermissions(ctx, &SelfEditPermission{EmployeeID: emp, Awards: true}); err != nil {
		t.Fatalf("failed to grant awards permission: %v", err)
	}

	// The row claims another owner and APPROVED status; both are
	// overridden on save.
	res, err := self.SubmitEdits(ctx, emp, "awards", SubmitInput{Rows: []json.RawMessage{goldMedal}})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if res.Saved != 1 || res.Deleted != 0 {
		t.Fatalf("got %+v, want 1 saved 0 deleted", res)
	}

	view = loadAwardsView(t, ctx, self, emp)
	if !view.CanEdit {
		t.Fatal("expected canEdit after grant")
	}
	if len(view.Editable) != 1 || len(view.Approved) != 0 {
		t.Fatalf("expected one editable row, got %d editable %d approved", len(view.Editable), len(view.Approved))
	}
	meta := view.Editable[0].Meta()
	if meta.EmployeeID != emp {
		t.Fatalf("ownership not forced to submitter: got %s", meta.EmployeeID)
	}
	if meta.Status != StatusPending {
		t.Fatalf("claimed status must be ignored: got %s", meta.Status)
	}
	if otherView := loadAwardsView(t, ctx, self, other); len(otherView.Editable) != 0 || len(otherView.Approved) != 0 {
		t.Fatal("row leaked to the claimed owner")
	}
	recID := meta.ID

	// Bulk approve stamps the reviewer.
	if n, err := svc.Approve(ctx, "awards", []string{recID}, reviewer); err != nil || n != 1 {
		t.Fatalf("approve: n=%d err=%v", n, err)
	}
	view = loadAwardsView(t, ctx, self, emp)
	if len(view.Editable) != 0 || len(view.Approved) != 1 {
		t.Fatalf("expected one approved row, got %d editable %d approved", len(view.Editable), len(view.Approved))
	}
	meta = view.Approved[0].Meta()
	if meta.ApprovedBy != reviewer || meta.ApprovedAt == nil {
		t.Fatalf("approval trail not stamped: %+v", meta)
	}

	// Approved rows survive portal deletes and updates untouched.
	res, err = self.SubmitEdits(ctx, emp, "awards", SubmitInput{Delete: []string{recID}})
	if err != nil {
		t.Fatalf("delete submission failed: %v", err)
	}
	if res.Deleted != 0 {
		t.Fatalf("approved row must survive delete, got %d deleted", res.Deleted)
	}
	rewrite := json.RawMessage(fmt.Sprintf(`{"id":%q,"name":"Silver Medal","year":2016}`, recID))
	res, err = self.SubmitEdits(ctx, emp, "awards", SubmitInput{Rows: []json.RawMessage{rewrite}})
	if err != nil {
		t.Fatalf("update submission failed: %v", err)
	}
	if res.Saved != 0 {
		t.Fatalf("approved row must skip portal update, got %d saved", res.Saved)
	}
	view = loadAwardsView(t, ctx, self, emp)
	if award := view.Approved[0].(*Award); award.Name != "Gold Medal" || !award.IsApproved() {
		t.Fatalf("approved row changed: %+v", award)
	}

	// Revert reopens the row and records the remark.
	if n, err := svc.Revert(ctx, "awards", []string{recID}, "needs certificate copy"); err != nil || n != 1 {
		t.Fatalf("revert: n=%d err=%v", n, err)
	}
	view = loadAwardsView(t, ctx, self, emp)
	if len(view.Editable) != 1 || len(view.Approved) != 0 {
		t.Fatalf("reverted row must be editable again: %d editable %d approved", len(view.Editable), len(view.Approved))
	}
	meta = view.Editable[0].Meta()
	if meta.Status != StatusPending || meta.ApprovedBy != "" || meta.ApprovedAt != nil {
		t.Fatalf("approval trail not cleared on revert: %+v", meta)
	}
	if meta.ReviewerRemark != "needs certificate copy" {
		t.Fatalf("got remark %q", meta.ReviewerRemark)
	}

	// Now pending, the same rewrite goes through and stays pending.
	res, err = self.SubmitEdits(ctx, emp, "awards", SubmitInput{Rows: []json.RawMessage{rewrite}})
	if err != nil {
		t.Fatalf("rewrite after revert failed: %v", err)
	}
	if res.Saved != 1 {
		t.Fatalf("pending row should accept portal update, got %d saved", res.Saved)
	}
	view = loadAwardsView(t, ctx, self, emp)
	if award := view.Editable[0].(*Award); award.Name != "Silver Medal" || award.Status != StatusPending {
		t.Fatalf("rewrite not applied: %+v", award)
	}

	// One bad row rejects the whole submission; the good row is not
	// inserted either.
	bad := SubmitInput{Rows: []json.RawMessage{
		json.RawMessage(`{"name":"Debate Trophy","year":2019}`),
		json.RawMessage(`{"year":2018}`),
	}}
	_, err = self.SubmitEdits(ctx, emp, "awards", bad)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Issues) != 1 || verr.Issues[0].Field != "rows[1].name" {
		t.Fatalf("issues = %+v", verr.Issues)
	}
	view = loadAwardsView(t, ctx, self, emp)
	if len(view.Editable) != 1 {
		t.Fatalf("rejected submission must persist nothing, got %d rows", len(view.Editable))
	}

	// A pending row can be removed through the portal.
	res, err = self.SubmitEdits(ctx, emp, "awards", SubmitInput{Delete: []string{recID}})
	if err != nil {
		t.Fatalf("final delete failed: %v", err)
	}
	if res.Deleted != 1 {
		t.Fatalf("got %d deleted, want 1", res.Deleted)
	}
	view = loadAwardsView(t, ctx, self, emp)
	if len(view.Editable) != 0 || len(view.Approved) != 0 {
		t.Fatalf("expected empty module after delete, got %+v", view)
	}
}
