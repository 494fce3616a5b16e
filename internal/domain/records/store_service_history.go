package records

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

// scopedUpdate rewrites the variant columns of one row. When editableBy is
// set the write only lands on that employee's non-approved rows.
func scopedUpdate(ctx context.Context, db DBTX, table, setClause string, args []any, id, editableBy string) (bool, error) {
	args = append(args, id)
	sql := "UPDATE " + table + " SET " + setClause + " WHERE id::text = $" + strconv.Itoa(len(args))
	if editableBy != "" {
		args = append(args, editableBy)
		sql += " AND employee_id = $" + strconv.Itoa(len(args)) + " AND status <> '" + StatusApproved + "'"
	}
	cmd, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func yearIssue(field string, year *int) *Issue {
	if year == nil {
		return nil
	}
	if *year < 1900 || *year > time.Now().Year()+1 {
		return &Issue{Field: field, Reason: "must be a plausible year"}
	}
	return nil
}

func requiredIssue(field, value string) *Issue {
	if strings.TrimSpace(value) == "" {
		return &Issue{Field: field, Reason: "is required"}
	}
	return nil
}

func appendIssue(issues []Issue, iss *Issue) []Issue {
	if iss == nil {
		return issues
	}
	return append(issues, *iss)
}

const educationColumns = metaSelect + `, degree, subject, year, institution`

func educationOps(s *Store) *ModuleOps {
	m := Module{Code: "education", Title: "Educational Qualifications", Table: "educations", PermColumn: "education"}
	return &ModuleOps{
		Module: m,
		Decode: func(data []byte) (Approvable, error) {
			var rec Education
			if err := json.Unmarshal(data, &rec); err != nil {
				return nil, err
			}
			return &rec, nil
		},
		Validate: func(a Approvable) []Issue {
			rec := a.(*Education)
			var issues []Issue
			issues = appendIssue(issues, requiredIssue("degree", rec.Degree))
			issues = appendIssue(issues, yearIssue("year", rec.Year))
			return issues
		},
		List: func(ctx context.Context, db DBTX, q ListQuery) ([]Approvable, error) {
			return listRecords(ctx, db, m, educationColumns, q, func(rows pgx.Rows) (Approvable, error) {
				var rec Education
				dest := append(metaScanDest(&rec.RecordMeta), &rec.Degree, &rec.Subject, &rec.Year, &rec.Institution)
				if err := rows.Scan(dest...); err != nil {
					return nil, err
				}
				return &rec, nil
			})
		},
		Insert: func(ctx context.Context, db DBTX, a Approvable) (string, error) {
			rec := a.(*Education)
			var id string
			err := db.QueryRow(ctx, `
        INSERT INTO educations (employee_id, degree, subject, year, institution)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id::text
      `, rec.EmployeeID, rec.Degree, rec.Subject, rec.Year, rec.Institution).Scan(&id)
			return id, err
		},
		Update: func(ctx context.Context, db DBTX, a Approvable, editableBy string) (bool, error) {
			rec := a.(*Education)
			return scopedUpdate(ctx, db, m.Table,
				"degree = $1, subject = $2, year = $3, institution = $4",
				[]any{rec.Degree, rec.Subject, rec.Year, rec.Institution},
				rec.ID, editableBy)
		},
	}
}

const tenureColumns = metaSelect + `, college_name, pay_level, designation, from_date, to_date, till_date, office_order_no, office_order_date, place`

func validateTenure(name string, from, to *time.Time, till bool) []Issue {
	var issues []Issue
	issues = appendIssue(issues, requiredIssue("collegeName", name))
	if from != nil && to != nil && to.Before(*from) {
		issues = append(issues, Issue{Field: "toDate", Reason: "must not precede fromDate"})
	}
	if till && to != nil {
		issues = append(issues, Issue{Field: "toDate", Reason: "must be empty when tillDate is set"})
	}
	return issues
}

func postingOps(s *Store) *ModuleOps {
	m := Module{Code: "postings", Title: "Posting Details", Table: "postings", PermColumn: "postings"}
	return &ModuleOps{
		Module: m,
		Decode: func(data []byte) (Approvable, error) {
			var rec Posting
			if err := json.Unmarshal(data, &rec); err != nil {
				return nil, err
			}
			return &rec, nil
		},
		Validate: func(a Approvable) []Issue {
			rec := a.(*Posting)
			return validateTenure(rec.CollegeName, rec.FromDate, rec.ToDate, rec.TillDate)
		},
		List: func(ctx context.Context, db DBTX, q ListQuery) ([]Approvable, error) {
			return listRecords(ctx, db, m, tenureColumns, q, func(rows pgx.Rows) (Approvable, error) {
				var rec Posting
				dest := append(metaScanDest(&rec.RecordMeta),
					&rec.CollegeName, &rec.PayLevel, &rec.Designation, &rec.FromDate, &rec.ToDate,
					&rec.TillDate, &rec.OfficeOrderNo, &rec.OfficeOrderDate, &rec.Place)
				if err := rows.Scan(dest...); err != nil {
					return nil, err
				}
				return &rec, nil
			})
		},
		Insert: func(ctx context.Context, db DBTX, a Approvable) (string, error) {
			rec := a.(*Posting)
			var id string
			err := db.QueryRow(ctx, `
        INSERT INTO postings (employee_id, college_name, pay_level, designation, from_date, to_date, till_date, office_order_no, office_order_date, place)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id::text
      `, rec.EmployeeID, rec.CollegeName, rec.PayLevel, rec.Designation, rec.FromDate, rec.ToDate,
				rec.TillDate, rec.OfficeOrderNo, rec.OfficeOrderDate, rec.Place).Scan(&id)
			return id, err
		},
		Update: func(ctx context.Context, db DBTX, a Approvable, editableBy string) (bool, error) {
			rec := a.(*Posting)
			return scopedUpdate(ctx, db, m.Table,
				"college_name = $1, pay_level = $2, designation = $3, from_date = $4, to_date = $5, till_date = $6, office_order_no = $7, office_order_date = $8, place = $9",
				[]any{rec.CollegeName, rec.PayLevel, rec.Designation, rec.FromDate, rec.ToDate, rec.TillDate, rec.OfficeOrderNo, rec.OfficeOrderDate, rec.Place},
				rec.ID, editableBy)
		},
	}
}

func deputationOps(s *Store) *ModuleOps {
	m := Module{Code: "deputations", Title: "Deputation Details", Table: "deputations", PermColumn: "deputations"}
	return &ModuleOps{
		Module: m,
		Decode: func(data []byte) (Approvable, error) {
			var rec Deputation
			if err := json.Unmarshal(data, &rec); err != nil {
				return nil, err
			}
			return &rec, nil
		},
		Validate: func(a Approvable) []Issue {
			rec := a.(*Deputation)
			return validateTenure(rec.CollegeName, rec.FromDate, rec.ToDate, rec.TillDate)
		},
		List: func(ctx context.Context, db DBTX, q ListQuery) ([]Approvable, error) {
			return listRecords(ctx, db, m, tenureColumns, q, func(rows pgx.Rows) (Approvable, error) {
				var rec Deputation
				dest := append(metaScanDest(&rec.RecordMeta),
					&rec.CollegeName, &rec.PayLevel, &rec.Designation, &rec.FromDate, &rec.ToDate,
					&rec.TillDate, &rec.OfficeOrderNo, &rec.OfficeOrderDate, &rec.Place)
				if err := rows.Scan(dest...); err != nil {
					return nil, err
				}
				return &rec, nil
			})
		},
		Insert: func(ctx context.Context, db DBTX, a Approvable) (string, error) {
			rec := a.(*Deputation)
			var id string
			err := db.QueryRow(ctx, `
        INSERT INTO deputations (employee_id, college_name, pay_level, designation, from_date, to_date, till_date, office_order_no, office_order_date, place)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id::text
      `, rec.EmployeeID, rec.CollegeName, rec.PayLevel, rec.Designation, rec.FromDate, rec.ToDate,
				rec.TillDate, rec.OfficeOrderNo, rec.OfficeOrderDate, rec.Place).Scan(&id)
			return id, err
		},
		Update: func(ctx context.Context, db DBTX, a Approvable, editableBy string) (bool, error) {
			rec := a.(*Deputation)
			return scopedUpdate(ctx, db, m.Table,
				"college_name = $1, pay_level = $2, designation = $3, from_date = $4, to_date = $5, till_date = $6, office_order_no = $7, office_order_date = $8, place = $9",
				[]any{rec.CollegeName, rec.PayLevel, rec.Designation, rec.FromDate, rec.ToDate, rec.TillDate, rec.OfficeOrderNo, rec.OfficeOrderDate, rec.Place},
				rec.ID, editableBy)
		},
	}
}
