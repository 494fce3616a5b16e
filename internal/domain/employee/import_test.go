package employee

import (
	"testing"
	"time"
)

func TestMapImportRow(t *testing.T) {
	values := map[string]string{
		"hrms_id":                "TECH1018",
		"name":                   "A K Sharma",
		"gender":                 "m",
		"dob":                    "15/01/1993",
		"date_joining":           "2015-07-01",
		"date_retirement":        "--",
		"seniority_overall_rank": "42",
		"disability_quota":       "yes",
		"branch":                 "Mechanical",
	}

	emp, errs := mapImportRow(values)
	if len(errs) != 0 {
		t.Fatalf("unexpected row errors: %+v", errs)
	}
	if emp.HRMSID != "TECH1018" || emp.Name != "A K Sharma" {
		t.Fatalf("identity fields not mapped: %+v", emp)
	}
	if emp.Gender != "M" {
		t.Fatalf("gender should be uppercased, got %q", emp.Gender)
	}
	if emp.DOB == nil || !emp.DOB.Equal(time.Date(1993, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("dob mismatch: %v", emp.DOB)
	}
	if emp.DateJoining == nil || !emp.DateJoining.Equal(time.Date(2015, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date_joining mismatch: %v", emp.DateJoining)
	}
	if emp.DateRetirement != nil {
		t.Fatalf("blank sentinel should map to absent, got %v", emp.DateRetirement)
	}
	if emp.SeniorityOverallRank == nil || *emp.SeniorityOverallRank != 42 {
		t.Fatalf("rank mismatch: %v", emp.SeniorityOverallRank)
	}
	if !emp.DisabilityQuota {
		t.Fatal("disability_quota yes should map to true")
	}
}

func TestMapImportRowErrors(t *testing.T) {
	values := map[string]string{
		"name":                   "No ID",
		"dob":                    "32-13-1988",
		"seniority_overall_rank": "first",
	}

	_, errs := mapImportRow(values)
	fields := map[string]bool{}
	for _, re := range errs {
		fields[re.Field] = true
	}
	for _, want := range []string{"hrms_id", "dob", "seniority_overall_rank"} {
		if !fields[want] {
			t.Fatalf("expected an error for %s, got %+v", want, errs)
		}
	}
}

func TestMergeImportRowKeepsLinkage(t *testing.T) {
	existing := Employee{ID: "e1", PhotoPath: "tech1018.jpg", UserID: "u1", CollegeID: "c1", Name: "Old"}
	imported := Employee{HRMSID: "TECH1018", Name: "New Name"}

	merged := mergeImportRow(existing, imported)
	if merged.ID != "e1" || merged.PhotoPath != "tech1018.jpg" || merged.UserID != "u1" || merged.CollegeID != "c1" {
		t.Fatalf("linkage fields lost: %+v", merged)
	}
	if merged.Name != "New Name" {
		t.Fatalf("imported values should win, got %q", merged.Name)
	}
}
