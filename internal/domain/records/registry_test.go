package records

import (
	"errors"
	"testing"
	"time"
)

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

var wantModules = []string{
	"education", "postings", "deputations", "apar", "property",
	"trainings", "awards", "pay", "increments", "leaves", "allegations",
}

func TestRegistryModules(t *testing.T) {
	reg := NewRegistry(nil)
	mods := reg.Modules()
	if len(mods) != len(wantModules) {
		t.Fatalf("got %d modules, want %d", len(mods), len(wantModules))
	}
	for i, code := range wantModules {
		m := mods[i]
		if m.Code != code {
			t.Errorf("modules[%d].Code = %q, want %q", i, m.Code, code)
		}
		if m.Table == "" || m.Title == "" || m.PermColumn == "" {
			t.Errorf("module %q has empty metadata: %+v", code, m)
		}
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	reg := NewRegistry(nil)
	if _, err := reg.Lookup("salary"); !errors.Is(err, ErrUnknownModule) {
		t.Fatalf("err = %v, want ErrUnknownModule", err)
	}
}

// Every permission column the registry names must be answerable by the
// matrix type, and an all-false matrix must deny everything.
func TestPermissionMatrixCoversRegistry(t *testing.T) {
	reg := NewRegistry(nil)
	var deny SelfEditPermission
	allow := SelfEditPermission{
		Education: true, Postings: true, Deputations: true, Apar: true,
		Property: true, Trainings: true, Awards: true, Pay: true,
		Increments: true, Leaves: true, Allegations: true,
	}
	for _, m := range reg.Modules() {
		if deny.Allowed(m.PermColumn) {
			t.Errorf("empty matrix allows %q", m.Code)
		}
		if !allow.Allowed(m.PermColumn) {
			t.Errorf("full matrix denies %q; permission column %q unmapped", m.Code, m.PermColumn)
		}
	}
	if deny.Allowed("unknown") || allow.Allowed("unknown") {
		t.Error("unknown code must always be denied")
	}
}

func TestDecodeIgnoresNothingButBadJSON(t *testing.T) {
	reg := NewRegistry(nil)
	ops, err := reg.Lookup("education")
	if err != nil {
		t.Fatal(err)
	}

	rec, err := ops.Decode([]byte(`{"degree":"B.E.","year":2001,"status":"APPROVED"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	edu, ok := rec.(*Education)
	if !ok {
		t.Fatalf("decoded %T, want *Education", rec)
	}
	if edu.Degree != "B.E." || edu.Year == nil || *edu.Year != 2001 {
		t.Errorf("fields not populated: %+v", edu)
	}

	if _, err := ops.Decode([]byte(`{`)); err == nil {
		t.Error("malformed JSON must fail to decode")
	}
}

func TestModuleValidation(t *testing.T) {
	reg := NewRegistry(nil)
	year := 1850
	count := -2
	tests := []struct {
		name   string
		code   string
		rec    Approvable
		fields []string
	}{
		{"education ok", "education", &Education{Degree: "M.Tech"}, nil},
		{"education missing degree", "education", &Education{}, []string{"degree"}},
		{"education silly year", "education", &Education{Degree: "B.Sc", Year: &year}, []string{"year"}},
		{"award missing name", "awards", &Award{}, []string{"name"}},
		{"increment negative count", "increments", &AdvanceIncrement{Qualification: "Ph.D", Count: count}, []string{"count"}},
		{"allegation without details", "allegations", &Allegation{HasAllegation: true}, []string{"details"}},
		{"allegation clean", "allegations", &Allegation{}, nil},
		{"leave missing period", "leaves", &LeaveRecord{LeaveType: "EL"}, []string{"periodFrom", "periodTo"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ops, err := reg.Lookup(tc.code)
			if err != nil {
				t.Fatal(err)
			}
			issues := ops.Validate(tc.rec)
			if len(issues) != len(tc.fields) {
				t.Fatalf("got %d issues %v, want fields %v", len(issues), issues, tc.fields)
			}
			for i, field := range tc.fields {
				if issues[i].Field != field {
					t.Errorf("issues[%d].Field = %q, want %q", i, issues[i].Field, field)
				}
			}
		})
	}
}

func TestLeavePeriodOrder(t *testing.T) {
	reg := NewRegistry(nil)
	ops, _ := reg.Lookup("leaves")
	from := mustDate("2024-05-10")
	to := mustDate("2024-05-01")
	issues := ops.Validate(&LeaveRecord{LeaveType: "CL", PeriodFrom: &from, PeriodTo: &to})
	if len(issues) != 1 || issues[0].Field != "periodTo" {
		t.Fatalf("issues = %v, want single periodTo ordering issue", issues)
	}
}
