package records

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
)

const trainingColumns = metaSelect + `, all_modules_done, overall_completion_date, certificate_no, area, institute, duration_weeks, completion_date, certificate_no_detail`

func trainingOps(s *Store) *ModuleOps {
	m := Module{Code: "trainings", Title: "Trainings", Table: "trainings", PermColumn: "trainings"}
	return &ModuleOps{
		Module: m,
		Decode: func(data []byte) (Approvable, error) {
			var rec Training
			if err := json.Unmarshal(data, &rec); err != nil {
				return nil, err
			}
			return &rec, nil
		},
		Validate: func(a Approvable) []Issue {
			rec := a.(*Training)
			var issues []Issue
			if rec.DurationWeeks != nil && *rec.DurationWeeks < 0 {
				issues = append(issues, Issue{Field: "durationWeeks", Reason: "must not be negative"})
			}
			if rec.AllModulesDone && rec.OverallCompletionDate == nil {
				issues = append(issues, Issue{Field: "overallCompletionDate", Reason: "is required when allModulesDone is set"})
			}
			return issues
		},
		List: func(ctx context.Context, db DBTX, q ListQuery) ([]Approvable, error) {
			return listRecords(ctx, db, m, trainingColumns, q, func(rows pgx.Rows) (Approvable, error) {
				var rec Training
				dest := append(metaScanDest(&rec.RecordMeta),
					&rec.AllModulesDone, &rec.OverallCompletionDate, &rec.CertificateNo, &rec.Area,
					&rec.Institute, &rec.DurationWeeks, &rec.CompletionDate, &rec.CertificateNoDetail)
				if err := rows.Scan(dest...); err != nil {
					return nil, err
				}
				return &rec, nil
			})
		},
		Insert: func(ctx context.Context, db DBTX, a Approvable) (string, error) {
			rec := a.(*Training)
			var id string
			err := db.QueryRow(ctx, `
        INSERT INTO trainings (employee_id, all_modules_done, overall_completion_date, certificate_no, area, institute, duration_weeks, completion_date, certificate_no_detail)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id::text
      `, rec.EmployeeID, rec.AllModulesDone, rec.OverallCompletionDate, rec.CertificateNo, rec.Area,
				rec.Institute, rec.DurationWeeks, rec.CompletionDate, rec.CertificateNoDetail).Scan(&id)
			return id, err
		},
		Update: func(ctx context.Context, db DBTX, a Approvable, editableBy string) (bool, error) {
			rec := a.(*Training)
			return scopedUpdate(ctx, db, m.Table,
				"all_modules_done = $1, overall_completion_date = $2, certificate_no = $3, area = $4, institute = $5, duration_weeks = $6, completion_date = $7, certificate_no_detail = $8",
				[]any{rec.AllModulesDone, rec.OverallCompletionDate, rec.CertificateNo, rec.Area, rec.Institute, rec.DurationWeeks, rec.CompletionDate, rec.CertificateNoDetail},
				rec.ID, editableBy)
		},
	}
}

const awardColumns = metaSelect + `, name, year, date, remarks`

func awardOps(s *Store) *ModuleOps {
	m := Module{Code: "awards", Title: "Awards & Honours", Table: "awards", PermColumn: "awards"}
	return &ModuleOps{
		Module: m,
		Decode: func(data []byte) (Approvable, error) {
			var rec Award
			if err := json.Unmarshal(data, &rec); err != nil {
				return nil, err
			}
			return &rec, nil
		},
		Validate: func(a Approvable) []Issue {
			rec := a.(*Award)
			var issues []Issue
			issues = appendIssue(issues, requiredIssue("name", rec.Name))
			issues = appendIssue(issues, yearIssue("year", rec.Year))
			return issues
		},
		List: func(ctx context.Context, db DBTX, q ListQuery) ([]Approvable, error) {
			return listRecords(ctx, db, m, awardColumns, q, func(rows pgx.Rows) (Approvable, error) {
				var rec Award
				dest := append(metaScanDest(&rec.RecordMeta), &rec.Name, &rec.Year, &rec.Date, &rec.Remarks)
				if err := rows.Scan(dest...); err != nil {
					return nil, err
				}
				return &rec, nil
			})
		},
		Insert: func(ctx context.Context, db DBTX, a Approvable) (string, error) {
			rec := a.(*Award)
			var id string
			err := db.QueryRow(ctx, `
        INSERT INTO awards (employee_id, name, year, date, remarks)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id::text
      `, rec.EmployeeID, rec.Name, rec.Year, rec.Date, rec.Remarks).Scan(&id)
			return id, err
		},
		Update: func(ctx context.Context, db DBTX, a Approvable, editableBy string) (bool, error) {
			rec := a.(*Award)
			return scopedUpdate(ctx, db, m.Table,
				"name = $1, year = $2, date = $3, remarks = $4",
				[]any{rec.Name, rec.Year, rec.Date, rec.Remarks},
				rec.ID, editableBy)
		},
	}
}

const payScaleColumns = metaSelect + `, pay_level, notif_no, notif_date, start_date, end_date, till_date`

func payOps(s *Store) *ModuleOps {
	m := Module{Code: "pay", Title: "Pay Scale Changes", Table: "pay_scale_changes", PermColumn: "pay"}
	return &ModuleOps{
		Module: m,
		Decode: func(data []byte) (Approvable, error) {
			var rec PayScaleChange
			if err := json.Unmarshal(data, &rec); err != nil {
				return nil, err
			}
			return &rec, nil
		},
		Validate: func(a Approvable) []Issue {
			rec := a.(*PayScaleChange)
			var issues []Issue
			issues = appendIssue(issues, requiredIssue("payLevel", rec.PayLevel))
			if rec.StartDate != nil && rec.EndDate != nil && rec.EndDate.Before(*rec.StartDate) {
				issues = append(issues, Issue{Field: "endDate", Reason: "must not precede startDate"})
			}
			return issues
		},
		List: func(ctx context.Context, db DBTX, q ListQuery) ([]Approvable, error) {
			return listRecords(ctx, db, m, payScaleColumns, q, func(rows pgx.Rows) (Approvable, error) {
				var rec PayScaleChange
				dest := append(metaScanDest(&rec.RecordMeta),
					&rec.PayLevel, &rec.NotifNo, &rec.NotifDate, &rec.StartDate, &rec.EndDate, &rec.TillDate)
				if err := rows.Scan(dest...); err != nil {
					return nil, err
				}
				return &rec, nil
			})
		},
		Insert: func(ctx context.Context, db DBTX, a Approvable) (string, error) {
			rec := a.(*PayScaleChange)
			var id string
			err := db.QueryRow(ctx, `
        INSERT INTO pay_scale_changes (employee_id, pay_level, notif_no, notif_date, start_date, end_date, till_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id::text
      `, rec.EmployeeID, rec.PayLevel, rec.NotifNo, rec.NotifDate, rec.StartDate, rec.EndDate, rec.TillDate).Scan(&id)
			return id, err
		},
		Update: func(ctx context.Context, db DBTX, a Approvable, editableBy string) (bool, error) {
			rec := a.(*PayScaleChange)
			return scopedUpdate(ctx, db, m.Table,
				"pay_level = $1, notif_no = $2, notif_date = $3, start_date = $4, end_date = $5, till_date = $6",
				[]any{rec.PayLevel, rec.NotifNo, rec.NotifDate, rec.StartDate, rec.EndDate, rec.TillDate},
				rec.ID, editableBy)
		},
	}
}

const incrementColumns = metaSelect + `, qualification, passing_year, notif_no, notif_date, count, pay_level, effective_from`

func incrementOps(s *Store) *ModuleOps {
	m := Module{Code: "increments", Title: "Advance Increments", Table: "advance_increments", PermColumn: "increments"}
	return &ModuleOps{
		Module: m,
		Decode: func(data []byte) (Approvable, error) {
			var rec AdvanceIncrement
			if err := json.Unmarshal(data, &rec); err != nil {
				return nil, err
			}
			return &rec, nil
		},
		Validate: func(a Approvable) []Issue {
			rec := a.(*AdvanceIncrement)
			var issues []Issue
			issues = appendIssue(issues, requiredIssue("qualification", rec.Qualification))
			issues = appendIssue(issues, yearIssue("passingYear", rec.PassingYear))
			if rec.Count < 0 {
				issues = append(issues, Issue{Field: "count", Reason: "must not be negative"})
			}
			return issues
		},
		List: func(ctx context.Context, db DBTX, q ListQuery) ([]Approvable, error) {
			return listRecords(ctx, db, m, incrementColumns, q, func(rows pgx.Rows) (Approvable, error) {
				var rec AdvanceIncrement
				dest := append(metaScanDest(&rec.RecordMeta),
					&rec.Qualification, &rec.PassingYear, &rec.NotifNo, &rec.NotifDate,
					&rec.Count, &rec.PayLevel, &rec.EffectiveFrom)
				if err := rows.Scan(dest...); err != nil {
					return nil, err
				}
				return &rec, nil
			})
		},
		Insert: func(ctx context.Context, db DBTX, a Approvable) (string, error) {
			rec := a.(*AdvanceIncrement)
			var id string
			err := db.QueryRow(ctx, `
        INSERT INTO advance_increments (employee_id, qualification, passing_year, notif_no, notif_date, count, pay_level, effective_from)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id::text
      `, rec.EmployeeID, rec.Qualification, rec.PassingYear, rec.NotifNo, rec.NotifDate,
				rec.Count, rec.PayLevel, rec.EffectiveFrom).Scan(&id)
			return id, err
		},
		Update: func(ctx context.Context, db DBTX, a Approvable, editableBy string) (bool, error) {
			rec := a.(*AdvanceIncrement)
			return scopedUpdate(ctx, db, m.Table,
				"qualification = $1, passing_year = $2, notif_no = $3, notif_date = $4, count = $5, pay_level = $6, effective_from = $7",
				[]any{rec.Qualification, rec.PassingYear, rec.NotifNo, rec.NotifDate, rec.Count, rec.PayLevel, rec.EffectiveFrom},
				rec.ID, editableBy)
		},
	}
}

const leaveColumns = metaSelect + `, leave_type, period_from, period_to, office_order_no, office_order_date`

func leaveOps(s *Store) *ModuleOps {
	m := Module{Code: "leaves", Title: "Leave Records", Table: "leave_records", PermColumn: "leaves"}
	return &ModuleOps{
		Module: m,
		Decode: func(data []byte) (Approvable, error) {
			var rec LeaveRecord
			if err := json.Unmarshal(data, &rec); err != nil {
				return nil, err
			}
			return &rec, nil
		},
		Validate: func(a Approvable) []Issue {
			rec := a.(*LeaveRecord)
			var issues []Issue
			issues = appendIssue(issues, requiredIssue("leaveType", rec.LeaveType))
			if rec.PeriodFrom == nil {
				issues = append(issues, Issue{Field: "periodFrom", Reason: "is required"})
			}
			if rec.PeriodTo == nil {
				issues = append(issues, Issue{Field: "periodTo", Reason: "is required"})
			}
			if rec.PeriodFrom != nil && rec.PeriodTo != nil && rec.PeriodTo.Before(*rec.PeriodFrom) {
				issues = append(issues, Issue{Field: "periodTo", Reason: "must not precede periodFrom"})
			}
			return issues
		},
		List: func(ctx context.Context, db DBTX, q ListQuery) ([]Approvable, error) {
			return listRecords(ctx, db, m, leaveColumns, q, func(rows pgx.Rows) (Approvable, error) {
				var rec LeaveRecord
				dest := append(metaScanDest(&rec.RecordMeta),
					&rec.LeaveType, &rec.PeriodFrom, &rec.PeriodTo, &rec.OfficeOrderNo, &rec.OfficeOrderDate)
				if err := rows.Scan(dest...); err != nil {
					return nil, err
				}
				return &rec, nil
			})
		},
		Insert: func(ctx context.Context, db DBTX, a Approvable) (string, error) {
			rec := a.(*LeaveRecord)
			var id string
			err := db.QueryRow(ctx, `
        INSERT INTO leave_records (employee_id, leave_type, period_from, period_to, office_order_no, office_order_date)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id::text
      `, rec.EmployeeID, rec.LeaveType, rec.PeriodFrom, rec.PeriodTo, rec.OfficeOrderNo, rec.OfficeOrderDate).Scan(&id)
			return id, err
		},
		Update: func(ctx context.Context, db DBTX, a Approvable, editableBy string) (bool, error) {
			rec := a.(*LeaveRecord)
			return scopedUpdate(ctx, db, m.Table,
				"leave_type = $1, period_from = $2, period_to = $3, office_order_no = $4, office_order_date = $5",
				[]any{rec.LeaveType, rec.PeriodFrom, rec.PeriodTo, rec.OfficeOrderNo, rec.OfficeOrderDate},
				rec.ID, editableBy)
		},
	}
}
