package reports

import (
	"testing"
	"time"

	"servicebook/internal/domain/employee"
)

func TestCSVRowMatchesHeader(t *testing.T) {
	dob := time.Date(1980, 6, 15, 0, 0, 0, 0, time.UTC)
	rank := 42
	e := employee.Employee{
		HRMSID:               "HRMS001",
		Name:                 "A. Kumar",
		DOB:                  &dob,
		SeniorityOverallRank: &rank,
		DisabilityQuota:      true,
	}
	row := csvRow(e)
	if len(row) != len(csvHeader) {
		t.Fatalf("row has %d cells, header has %d", len(row), len(csvHeader))
	}
	cells := map[string]string{}
	for i, name := range csvHeader {
		cells[name] = row[i]
	}
	if cells["hrms_id"] != "HRMS001" {
		t.Errorf("hrms_id = %q", cells["hrms_id"])
	}
	if cells["dob"] != "1980-06-15" {
		t.Errorf("dob = %q, want ISO form", cells["dob"])
	}
	if cells["seniority_overall_rank"] != "42" {
		t.Errorf("rank = %q", cells["seniority_overall_rank"])
	}
	if cells["disability_quota"] != "yes" {
		t.Errorf("disability_quota = %q", cells["disability_quota"])
	}
	if cells["date_retirement"] != "" {
		t.Errorf("nil date must export empty, got %q", cells["date_retirement"])
	}
}
