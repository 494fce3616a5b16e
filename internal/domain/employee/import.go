package employee

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Importer ingests the employee register from CSV, keyed by HRMS ID with
// upsert semantics. Valid rows are applied independently; failed rows are
// reported with their line number and skipped.
type Importer struct {
	Service *Service
}

func NewImporter(service *Service) *Importer {
	return &Importer{Service: service}
}

type ImportRowError struct {
	Line   int    `json:"line"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type ImportSummary struct {
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Errors  []ImportRowError `json:"errors,omitempty"`
}

func (im *Importer) ImportCSV(ctx context.Context, r io.Reader) (ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return ImportSummary{}, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var summary ImportSummary
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			summary.Errors = append(summary.Errors, ImportRowError{Line: line, Reason: "malformed csv row"})
			continue
		}

		values := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(record) {
				values[column] = strings.TrimSpace(record[i])
			}
		}

		emp, rowErrs := mapImportRow(values)
		if len(rowErrs) > 0 {
			for _, re := range rowErrs {
				re.Line = line
				summary.Errors = append(summary.Errors, re)
			}
			continue
		}

		created, err := im.upsert(ctx, emp)
		if err != nil {
			summary.Errors = append(summary.Errors, ImportRowError{Line: line, Reason: err.Error()})
			continue
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}
	return summary, nil
}

func (im *Importer) upsert(ctx context.Context, emp Employee) (bool, error) {
	existing, err := im.Service.Store.GetByHRMSID(ctx, emp.HRMSID)
	if errors.Is(err, ErrNotFound) {
		_, err := im.Service.Create(ctx, emp)
		return true, err
	}
	if err != nil {
		return false, err
	}

	merged := mergeImportRow(existing, emp)
	_, err = im.Service.Update(ctx, existing.ID, merged)
	return false, err
}

// mapImportRow converts one header-keyed CSV row into an Employee. Only
// columns present in the row are considered; dates go through the
// multi-format parser.
func mapImportRow(values map[string]string) (Employee, []ImportRowError) {
	var emp Employee
	var errs []ImportRowError

	emp.HRMSID = values["hrms_id"]
	if emp.HRMSID == "" {
		errs = append(errs, ImportRowError{Field: "hrms_id", Reason: "is required"})
	}
	emp.Name = values["name"]
	if emp.Name == "" {
		errs = append(errs, ImportRowError{Field: "name", Reason: "is required"})
	}

	emp.CivilListNo = values["civil_list_no"]
	emp.FatherName = values["father_name"]
	emp.Gender = strings.ToUpper(values["gender"])
	emp.MaritalStatus = values["marital_status"]
	emp.Email = values["email"]
	emp.Mobile = values["mobile"]
	emp.HomeState = values["home_state"]
	emp.HomeDistrict = values["home_district"]
	emp.PinCode = values["pin_code"]
	emp.PermanentAddress = values["permanent_address"]
	emp.CurrentAddress = values["current_address"]
	emp.Division = values["division"]
	emp.CollegeName = values["college_name"]
	emp.PresentPosting = values["present_posting"]
	emp.Branch = values["branch"]
	emp.CurrentDesignation = values["current_designation"]
	emp.BPSCAdvtNo = values["bpsc_advt_no"]
	emp.SelectionCategory = values["selection_category"]
	emp.ActualCategory = values["actual_category"]
	emp.DisabilityDetails = values["disability_details"]
	emp.AppointmentText = values["appointment_text"]
	emp.AppointmentOrderNo = values["appointment_order_no"]
	emp.PranGPFNo = values["pran_gpf_no"]

	if raw := values["seniority_overall_rank"]; raw != "" {
		rank, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, ImportRowError{Field: "seniority_overall_rank", Reason: "must be a whole number"})
		} else {
			emp.SeniorityOverallRank = &rank
		}
	}

	emp.DisabilityQuota = parseImportBool(values["disability_quota"])

	for _, field := range []struct {
		column string
		target **time.Time
	}{
		{"dob", &emp.DOB},
		{"date_joining", &emp.DateJoining},
		{"date_confirmation", &emp.DateConfirmation},
		{"date_retirement", &emp.DateRetirement},
	} {
		raw, ok := values[field.column]
		if !ok {
			continue
		}
		parsed, err := ParseImportDate(raw)
		if err != nil {
			errs = append(errs, ImportRowError{Field: field.column, Reason: err.Error()})
			continue
		}
		*field.target = parsed
	}

	return emp, errs
}

// mergeImportRow lays imported values over an existing record, keeping
// identity, photo and credential linkage intact.
func mergeImportRow(existing, imported Employee) Employee {
	imported.ID = existing.ID
	imported.PhotoPath = existing.PhotoPath
	imported.UserID = existing.UserID
	imported.CollegeID = existing.CollegeID
	imported.PresentPostingCollegeID = existing.PresentPostingCollegeID
	imported.CreatedAt = existing.CreatedAt
	return imported
}

func parseImportBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}
