package employee

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("employee not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
    id,
    COALESCE(civil_list_no, ''),
    hrms_id,
    name,
    COALESCE(father_name, ''),
    COALESCE(gender, ''),
    COALESCE(marital_status, ''),
    dob,
    COALESCE(email, ''),
    COALESCE(mobile, ''),
    COALESCE(photo_path, ''),
    COALESCE(home_state, ''),
    COALESCE(home_district, ''),
    COALESCE(pin_code, ''),
    COALESCE(permanent_address, ''),
    COALESCE(current_address, ''),
    COALESCE(division, ''),
    COALESCE(college_id::text, ''),
    COALESCE(college_name, ''),
    COALESCE(present_posting_college_id::text, ''),
    COALESCE(present_posting, ''),
    COALESCE(branch, ''),
    COALESCE(current_designation, ''),
    COALESCE(bpsc_advt_no, ''),
    seniority_overall_rank,
    COALESCE(selection_category, ''),
    COALESCE(actual_category, ''),
    disability_quota,
    COALESCE(disability_details, ''),
    COALESCE(appointment_text, ''),
    COALESCE(appointment_order_no, ''),
    date_joining,
    date_confirmation,
    date_retirement,
    COALESCE(pran_gpf_no, ''),
    COALESCE(user_id::text, ''),
    created_at,
    updated_at`

func scanEmployee(row pgx.Row) (Employee, error) {
	var e Employee
	err := row.Scan(
		&e.ID, &e.CivilListNo, &e.HRMSID, &e.Name, &e.FatherName, &e.Gender, &e.MaritalStatus,
		&e.DOB, &e.Email, &e.Mobile, &e.PhotoPath, &e.HomeState, &e.HomeDistrict, &e.PinCode,
		&e.PermanentAddress, &e.CurrentAddress, &e.Division, &e.CollegeID, &e.CollegeName,
		&e.PresentPostingCollegeID, &e.PresentPosting, &e.Branch, &e.CurrentDesignation,
		&e.BPSCAdvtNo, &e.SeniorityOverallRank, &e.SelectionCategory, &e.ActualCategory,
		&e.DisabilityQuota, &e.DisabilityDetails, &e.AppointmentText, &e.AppointmentOrderNo,
		&e.DateJoining, &e.DateConfirmation, &e.DateRetirement, &e.PranGPFNo, &e.UserID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return e, err
}

func (s *Store) GetEmployee(ctx context.Context, employeeID string) (Employee, error) {
	return scanEmployee(s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, employeeID))
}

func (s *Store) GetByHRMSID(ctx context.Context, hrmsID string) (Employee, error) {
	return scanEmployee(s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE hrms_id = $1
  `, hrmsID))
}

func (s *Store) GetByUserID(ctx context.Context, userID string) (Employee, error) {
	return scanEmployee(s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE user_id = $1
  `, userID))
}

func filterClause(filter Filter, args []any) (string, []any) {
	clause := ""
	if filter.HRMSID != "" {
		args = append(args, "%"+filter.HRMSID+"%")
		clause += " AND hrms_id ILIKE $" + strconv.Itoa(len(args))
	}
	if filter.Branch != "" {
		args = append(args, "%"+filter.Branch+"%")
		clause += " AND branch ILIKE $" + strconv.Itoa(len(args))
	}
	if filter.College != "" {
		args = append(args, "%"+filter.College+"%")
		clause += " AND college_name ILIKE $" + strconv.Itoa(len(args))
	}
	return clause, args
}

func (s *Store) ListEmployees(ctx context.Context, filter Filter, limit, offset int) ([]Employee, error) {
	clause, args := filterClause(filter, nil)
	args = append(args, limit, offset)
	query := `
    SELECT ` + employeeColumns + `
    FROM employees
    WHERE TRUE` + clause + `
    ORDER BY hrms_id
    LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) CountEmployees(ctx context.Context, filter Filter) (int, error) {
	clause, args := filterClause(filter, nil)
	var total int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE TRUE"+clause, args...).Scan(&total)
	return total, err
}

func (s *Store) CreateEmployee(ctx context.Context, e Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (civil_list_no, hrms_id, name, father_name, gender, marital_status, dob, email, mobile,
      home_state, home_district, pin_code, permanent_address, current_address, division, college_id, college_name,
      present_posting_college_id, present_posting, branch, current_designation, bpsc_advt_no, seniority_overall_rank,
      selection_category, actual_category, disability_quota, disability_details, appointment_text,
      appointment_order_no, date_joining, date_confirmation, date_retirement, pran_gpf_no)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33)
    RETURNING id
  `,
		e.CivilListNo, e.HRMSID, e.Name, e.FatherName, e.Gender, e.MaritalStatus, e.DOB, e.Email, e.Mobile,
		e.HomeState, e.HomeDistrict, e.PinCode, e.PermanentAddress, e.CurrentAddress, e.Division,
		nullIfEmpty(e.CollegeID), e.CollegeName, nullIfEmpty(e.PresentPostingCollegeID), e.PresentPosting,
		e.Branch, e.CurrentDesignation, e.BPSCAdvtNo, e.SeniorityOverallRank, e.SelectionCategory,
		e.ActualCategory, e.DisabilityQuota, e.DisabilityDetails, e.AppointmentText, e.AppointmentOrderNo,
		e.DateJoining, e.DateConfirmation, e.DateRetirement, e.PranGPFNo,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, employeeID string, e Employee) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET civil_list_no = $1,
        hrms_id = $2,
        name = $3,
        father_name = $4,
        gender = $5,
        marital_status = $6,
        dob = $7,
        email = $8,
        mobile = $9,
        home_state = $10,
        home_district = $11,
        pin_code = $12,
        permanent_address = $13,
        current_address = $14,
        division = $15,
        college_id = $16,
        college_name = $17,
        present_posting_college_id = $18,
        present_posting = $19,
        branch = $20,
        current_designation = $21,
        bpsc_advt_no = $22,
        seniority_overall_rank = $23,
        selection_category = $24,
        actual_category = $25,
        disability_quota = $26,
        disability_details = $27,
        appointment_text = $28,
        appointment_order_no = $29,
        date_joining = $30,
        date_confirmation = $31,
        date_retirement = $32,
        pran_gpf_no = $33,
        updated_at = now()
    WHERE id = $34
  `,
		e.CivilListNo, e.HRMSID, e.Name, e.FatherName, e.Gender, e.MaritalStatus, e.DOB, e.Email, e.Mobile,
		e.HomeState, e.HomeDistrict, e.PinCode, e.PermanentAddress, e.CurrentAddress, e.Division,
		nullIfEmpty(e.CollegeID), e.CollegeName, nullIfEmpty(e.PresentPostingCollegeID), e.PresentPosting,
		e.Branch, e.CurrentDesignation, e.BPSCAdvtNo, e.SeniorityOverallRank, e.SelectionCategory,
		e.ActualCategory, e.DisabilityQuota, e.DisabilityDetails, e.AppointmentText, e.AppointmentOrderNo,
		e.DateJoining, e.DateConfirmation, e.DateRetirement, e.PranGPFNo, employeeID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdatePhotoPath(ctx context.Context, employeeID, photoPath string) error {
	cmd, err := s.DB.Exec(ctx, "UPDATE employees SET photo_path = $1, updated_at = now() WHERE id = $2", photoPath, employeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
