package records

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
)

const yearlyReturnColumns = metaSelect + `, year, submitted_date, submitted`

func validateYearlyReturn(year int, submittedDate *time.Time, submitted bool) []Issue {
	var issues []Issue
	if year < 1900 || year > time.Now().Year()+1 {
		issues = append(issues, Issue{Field: "year", Reason: "must be a plausible year"})
	}
	if submitted && submittedDate == nil {
		issues = append(issues, Issue{Field: "submittedDate", Reason: "is required when submitted is set"})
	}
	return issues
}

func aparOps(s *Store) *ModuleOps {
	m := Module{Code: "apar", Title: "APAR Submissions", Table: "apars", PermColumn: "apar"}
	return &ModuleOps{
		Module: m,
		Decode: func(data []byte) (Approvable, error) {
			var rec Apar
			if err := json.Unmarshal(data, &rec); err != nil {
				return nil, err
			}
			return &rec, nil
		},
		Validate: func(a Approvable) []Issue {
			rec := a.(*Apar)
			return validateYearlyReturn(rec.Year, rec.SubmittedDate, rec.Submitted)
		},
		List: func(ctx context.Context, db DBTX, q ListQuery) ([]Approvable, error) {
			return listRecords(ctx, db, m, yearlyReturnColumns, q, func(rows pgx.Rows) (Approvable, error) {
				var rec Apar
				dest := append(metaScanDest(&rec.RecordMeta), &rec.Year, &rec.SubmittedDate, &rec.Submitted)
				if err := rows.Scan(dest...); err != nil {
					return nil, err
				}
				return &rec, nil
			})
		},
		Insert: func(ctx context.Context, db DBTX, a Approvable) (string, error) {
			rec := a.(*Apar)
			var id string
			err := db.QueryRow(ctx, `
        INSERT INTO apars (employee_id, year, submitted_date, submitted)
        VALUES ($1, $2, $3, $4)
        RETURNING id::text
      `, rec.EmployeeID, rec.Year, rec.SubmittedDate, rec.Submitted).Scan(&id)
			return id, err
		},
		Update: func(ctx context.Context, db DBTX, a Approvable, editableBy string) (bool, error) {
			rec := a.(*Apar)
			return scopedUpdate(ctx, db, m.Table,
				"year = $1, submitted_date = $2, submitted = $3",
				[]any{rec.Year, rec.SubmittedDate, rec.Submitted},
				rec.ID, editableBy)
		},
	}
}

func propertyOps(s *Store) *ModuleOps {
	m := Module{Code: "property", Title: "Property Returns", Table: "property_returns", PermColumn: "property"}
	return &ModuleOps{
		Module: m,
		Decode: func(data []byte) (Approvable, error) {
			var rec PropertyReturn
			if err := json.Unmarshal(data, &rec); err != nil {
				return nil, err
			}
			return &rec, nil
		},
		Validate: func(a Approvable) []Issue {
			rec := a.(*PropertyReturn)
			return validateYearlyReturn(rec.Year, rec.SubmittedDate, rec.Submitted)
		},
		List: func(ctx context.Context, db DBTX, q ListQuery) ([]Approvable, error) {
			return listRecords(ctx, db, m, yearlyReturnColumns, q, func(rows pgx.Rows) (Approvable, error) {
				var rec PropertyReturn
				dest := append(metaScanDest(&rec.RecordMeta), &rec.Year, &rec.SubmittedDate, &rec.Submitted)
				if err := rows.Scan(dest...); err != nil {
					return nil, err
				}
				return &rec, nil
			})
		},
		Insert: func(ctx context.Context, db DBTX, a Approvable) (string, error) {
			rec := a.(*PropertyReturn)
			var id string
			err := db.QueryRow(ctx, `
        INSERT INTO property_returns (employee_id, year, submitted_date, submitted)
        VALUES ($1, $2, $3, $4)
        RETURNING id::text
      `, rec.EmployeeID, rec.Year, rec.SubmittedDate, rec.Submitted).Scan(&id)
			return id, err
		},
		Update: func(ctx context.Context, db DBTX, a Approvable, editableBy string) (bool, error) {
			rec := a.(*PropertyReturn)
			return scopedUpdate(ctx, db, m.Table,
				"year = $1, submitted_date = $2, submitted = $3",
				[]any{rec.Year, rec.SubmittedDate, rec.Submitted},
				rec.ID, editableBy)
		},
	}
}

const allegationColumns = metaSelect + `, has_allegation, details`

func allegationOps(s *Store) *ModuleOps {
	m := Module{Code: "allegations", Title: "Allegations / Disciplinary", Table: "allegations", PermColumn: "allegations"}
	return &ModuleOps{
		Module: m,
		Decode: func(data []byte) (Approvable, error) {
			var rec Allegation
			if err := json.Unmarshal(data, &rec); err != nil {
				return nil, err
			}
			return &rec, nil
		},
		Validate: func(a Approvable) []Issue {
			rec := a.(*Allegation)
			var issues []Issue
			if rec.HasAllegation {
				issues = appendIssue(issues, requiredIssue("details", rec.Details))
			}
			return issues
		},
		List: func(ctx context.Context, db DBTX, q ListQuery) ([]Approvable, error) {
			return listRecords(ctx, db, m, allegationColumns, q, func(rows pgx.Rows) (Approvable, error) {
				var rec Allegation
				dest := append(metaScanDest(&rec.RecordMeta), &rec.HasAllegation, &rec.Details)
				if err := rows.Scan(dest...); err != nil {
					return nil, err
				}
				return &rec, nil
			})
		},
		Insert: func(ctx context.Context, db DBTX, a Approvable) (string, error) {
			rec := a.(*Allegation)
			var id string
			err := db.QueryRow(ctx, `
        INSERT INTO allegations (employee_id, has_allegation, details)
        VALUES ($1, $2, $3)
        RETURNING id::text
      `, rec.EmployeeID, rec.HasAllegation, rec.Details).Scan(&id)
			return id, err
		},
		Update: func(ctx context.Context, db DBTX, a Approvable, editableBy string) (bool, error) {
			rec := a.(*Allegation)
			return scopedUpdate(ctx, db, m.Table,
				"has_allegation = $1, details = $2",
				[]any{rec.HasAllegation, rec.Details},
				rec.ID, editableBy)
		},
	}
}
