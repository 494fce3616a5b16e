// Package reports renders the employee register for download, as CSV for
// onward processing or as a tabular PDF for printing.
package reports

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"servicebook/internal/domain/employee"
)

const exportPageSize = 500

type Service struct {
	Employees *employee.Store
}

func NewService(store *employee.Store) *Service {
	return &Service{Employees: store}
}

// csvHeader mirrors the bulk import header so an export can be edited and
// re-imported round-trip.
var csvHeader = []string{
	"civil_list_no", "hrms_id", "name", "father_name", "gender", "marital_status",
	"dob", "email", "mobile", "home_state", "home_district", "pin_code",
	"permanent_address", "current_address", "division", "college_name",
	"present_posting", "branch", "current_designation", "bpsc_advt_no",
	"seniority_overall_rank", "selection_category", "actual_category",
	"disability_quota", "disability_details", "appointment_text",
	"appointment_order_no", "date_joining", "date_confirmation",
	"date_retirement", "pran_gpf_no",
}

func csvRow(e employee.Employee) []string {
	rank := ""
	if e.SeniorityOverallRank != nil {
		rank = strconv.Itoa(*e.SeniorityOverallRank)
	}
	quota := ""
	if e.DisabilityQuota {
		quota = "yes"
	}
	return []string{
		e.CivilListNo, e.HRMSID, e.Name, e.FatherName, e.Gender, e.MaritalStatus,
		employee.FormatExportDate(e.DOB), e.Email, e.Mobile, e.HomeState,
		e.HomeDistrict, e.PinCode, e.PermanentAddress, e.CurrentAddress,
		e.Division, e.CollegeName, e.PresentPosting, e.Branch,
		e.CurrentDesignation, e.BPSCAdvtNo, rank, e.SelectionCategory,
		e.ActualCategory, quota, e.DisabilityDetails, e.AppointmentText,
		e.AppointmentOrderNo, employee.FormatExportDate(e.DateJoining),
		employee.FormatExportDate(e.DateConfirmation),
		employee.FormatExportDate(e.DateRetirement), e.PranGPFNo,
	}
}

func (s *Service) forEach(ctx context.Context, filter employee.Filter, fn func(employee.Employee) error) error {
	offset := 0
	for {
		page, err := s.Employees.ListEmployees(ctx, filter, exportPageSize, offset)
		if err != nil {
			return err
		}
		for _, e := range page {
			if err := fn(e); err != nil {
				return err
			}
		}
		if len(page) < exportPageSize {
			return nil
		}
		offset += exportPageSize
	}
}

// RegisterCSV streams the filtered register with dates in ISO form.
func (s *Service) RegisterCSV(ctx context.Context, w io.Writer, filter employee.Filter) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	err := s.forEach(ctx, filter, func(e employee.Employee) error {
		return cw.Write(csvRow(e))
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

var pdfColumns = []struct {
	title string
	width float64
	value func(e employee.Employee) string
}{
	{"HRMS ID", 28, func(e employee.Employee) string { return e.HRMSID }},
	{"Name", 55, func(e employee.Employee) string { return e.Name }},
	{"Designation", 48, func(e employee.Employee) string { return e.CurrentDesignation }},
	{"Branch", 30, func(e employee.Employee) string { return e.Branch }},
	{"College", 60, func(e employee.Employee) string { return e.CollegeName }},
	{"DOB", 24, func(e employee.Employee) string { return employee.FormatExportDate(e.DOB) }},
	{"Joined", 24, func(e employee.Employee) string { return employee.FormatExportDate(e.DateJoining) }},
}

// RegisterPDF renders the filtered register as a landscape table.
func (s *Service) RegisterPDF(ctx context.Context, w io.Writer, filter employee.Filter) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Employee Register")
	pdf.Ln(12)

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	header()

	count := 0
	err := s.forEach(ctx, filter, func(e employee.Employee) error {
		if pdf.GetY() > 180 {
			pdf.AddPage()
			header()
		}
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 6, col.value(e), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		count++
		return nil
	})
	if err != nil {
		return err
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Total employees: %d", count))
	return pdf.Output(w)
}
