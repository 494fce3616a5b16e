package records

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// SelfEditPermission is the per-employee matrix of modules the employee
// may edit through the portal. A missing row means nothing is allowed.
type SelfEditPermission struct {
	EmployeeID  string `json:"employeeId"`
	Education   bool   `json:"education"`
	Postings    bool   `json:"postings"`
	Deputations bool   `json:"deputations"`
	Apar        bool   `json:"apar"`
	Property    bool   `json:"property"`
	Trainings   bool   `json:"trainings"`
	Awards      bool   `json:"awards"`
	Pay         bool   `json:"pay"`
	Increments  bool   `json:"increments"`
	Leaves      bool   `json:"leaves"`
	Allegations bool   `json:"allegations"`
}

// Allowed reports whether the matrix grants the given module code.
func (p *SelfEditPermission) Allowed(code string) bool {
	switch code {
	case "education":
		return p.Education
	case "postings":
		return p.Postings
	case "deputations":
		return p.Deputations
	case "apar":
		return p.Apar
	case "property":
		return p.Property
	case "trainings":
		return p.Trainings
	case "awards":
		return p.Awards
	case "pay":
		return p.Pay
	case "increments":
		return p.Increments
	case "leaves":
		return p.Leaves
	case "allegations":
		return p.Allegations
	default:
		return false
	}
}

const permissionColumns = `employee_id::text, education, postings, deputations, apar, property, trainings, awards, pay, increments, leaves, allegations`

// GetPermissions loads the matrix for an employee. A missing row comes
// back as an all-false matrix rather than an error.
func (s *Store) GetPermissions(ctx context.Context, employeeID string) (*SelfEditPermission, error) {
	p := SelfEditPermission{EmployeeID: employeeID}
	err := s.DB.QueryRow(ctx, `
    SELECT `+permissionColumns+`
    FROM self_edit_permissions
    WHERE employee_id = $1
  `, employeeID).Scan(
		&p.EmployeeID, &p.Education, &p.Postings, &p.Deputations, &p.Apar, &p.Property,
		&p.Trainings, &p.Awards, &p.Pay, &p.Increments, &p.Leaves, &p.Allegations,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SetPermissions upserts the full matrix for an employee.
func (s *Store) SetPermissions(ctx context.Context, p *SelfEditPermission) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO self_edit_permissions (employee_id, education, postings, deputations, apar, property, trainings, awards, pay, increments, leaves, allegations)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    ON CONFLICT (employee_id) DO UPDATE SET
      education = EXCLUDED.education,
      postings = EXCLUDED.postings,
      deputations = EXCLUDED.deputations,
      apar = EXCLUDED.apar,
      property = EXCLUDED.property,
      trainings = EXCLUDED.trainings,
      awards = EXCLUDED.awards,
      pay = EXCLUDED.pay,
      increments = EXCLUDED.increments,
      leaves = EXCLUDED.leaves,
      allegations = EXCLUDED.allegations
  `, p.EmployeeID, p.Education, p.Postings, p.Deputations, p.Apar, p.Property,
		p.Trainings, p.Awards, p.Pay, p.Increments, p.Leaves, p.Allegations)
	return err
}

// CanEdit reads the single permission column fresh on every call so a
// revocation takes effect on the next request. Absent row means no.
func (s *Store) CanEdit(ctx context.Context, employeeID string, m Module) (bool, error) {
	var allowed bool
	err := s.DB.QueryRow(ctx, `
    SELECT `+m.PermColumn+`
    FROM self_edit_permissions
    WHERE employee_id = $1
  `, employeeID).Scan(&allowed)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return allowed, nil
}
