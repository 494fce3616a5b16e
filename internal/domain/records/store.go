package records

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by both the pool and a transaction, so the self-service
// submit path can run every write inside one transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// ListQuery narrows a module listing. EmployeeID scopes to one employee
// (mandatory on self-service paths), Status filters by lifecycle state,
// Limit <= 0 means no paging.
type ListQuery struct {
	EmployeeID string
	Status     string
	Limit      int
	Offset     int
}

// Approve transitions the given rows to APPROVED, attributing the actor
// uniformly. Unknown ids simply do not match; an empty set is a no-op.
func (s *Store) Approve(ctx context.Context, db DBTX, m Module, ids []string, actor string, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmd, err := db.Exec(ctx, `
    UPDATE `+m.Table+`
    SET status = '`+StatusApproved+`', approved_by = $1, approved_at = $2
    WHERE id::text = ANY($3)
  `, actor, at, ids)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

// RevertToPending demotes the given rows to PENDING and clears the
// approval trail. A non-empty remark replaces the reviewer remark, which
// is how a rejection is recorded.
func (s *Store) RevertToPending(ctx context.Context, db DBTX, m Module, ids []string, remark string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmd, err := db.Exec(ctx, `
    UPDATE `+m.Table+`
    SET status = '`+StatusPending+`', approved_by = NULL, approved_at = NULL, reviewer_remark = $1
    WHERE id::text = ANY($2)
  `, remark, ids)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

// DeleteEditable removes the given rows only where they belong to the
// employee and are not APPROVED; everything else survives silently.
func (s *Store) DeleteEditable(ctx context.Context, db DBTX, m Module, employeeID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmd, err := db.Exec(ctx, `
    DELETE FROM `+m.Table+`
    WHERE employee_id = $1 AND id::text = ANY($2) AND status <> '`+StatusApproved+`'
  `, employeeID, ids)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

// DeleteRecord is the unrestricted administrative delete.
func (s *Store) DeleteRecord(ctx context.Context, m Module, id string) (bool, error) {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM "+m.Table+" WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func listClause(q ListQuery) (string, []any) {
	clause := ""
	var args []any
	if q.EmployeeID != "" {
		args = append(args, q.EmployeeID)
		clause += " AND employee_id = $" + strconv.Itoa(len(args))
	}
	if q.Status != "" {
		args = append(args, q.Status)
		clause += " AND status = $" + strconv.Itoa(len(args))
	}
	clause += " ORDER BY created_at DESC, id DESC"
	if q.Limit > 0 {
		args = append(args, q.Limit, q.Offset)
		clause += " LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args))
	}
	return clause, args
}

// listRecords runs the shared module listing shape; each variant supplies
// its column list and row scanner.
func listRecords(ctx context.Context, db DBTX, m Module, columns string, q ListQuery, scan func(rows pgx.Rows) (Approvable, error)) ([]Approvable, error) {
	clause, args := listClause(q)
	rows, err := db.Query(ctx, "SELECT "+columns+" FROM "+m.Table+" WHERE TRUE"+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Approvable
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

const metaSelect = `id::text, employee_id::text, status, COALESCE(approved_by::text, ''), approved_at, COALESCE(reviewer_remark, ''), created_at`

func metaScanDest(m *RecordMeta) []any {
	return []any{&m.ID, &m.EmployeeID, &m.Status, &m.ApprovedBy, &m.ApprovedAt, &m.ReviewerRemark, &m.CreatedAt}
}
