package shared

import (
	"testing"
)

func TestValidatorIssuesSorted(t *testing.T) {
	v := NewValidator()
	v.Add("zeta", "bad")
	v.Add("alpha", "missing")
	v.Required("beta", "  ", "beta is required")

	issues := v.Issues()
	if len(issues) != 3 {
		t.Fatalf("got %d issues, want 3", len(issues))
	}
	if issues[0].Field != "alpha" || issues[1].Field != "beta" || issues[2].Field != "zeta" {
		t.Fatalf("issues not sorted by field: %+v", issues)
	}
}

func TestValidatorEnum(t *testing.T) {
	v := NewValidator()
	v.Enum("gender", "M", []string{"M", "F", "O"}, "bad gender")
	v.Enum("status", "STALE", []string{"PENDING", "APPROVED"}, "bad status")
	issues := v.Issues()
	if len(issues) != 1 || issues[0].Field != "status" {
		t.Fatalf("issues = %+v", issues)
	}
}

func TestParseDateLayouts(t *testing.T) {
	want := "2024-02-01"
	for _, value := range []string{"2024-02-01", "01-02-2024", "01/02/2024", "2024-02-01T00:00:00Z"} {
		parsed, err := ParseDate(value)
		if err != nil {
			t.Fatalf("ParseDate(%q): unexpected error: %v", value, err)
		}
		if got := parsed.Format("2006-01-02"); got != want {
			t.Fatalf("ParseDate(%q) = %s, want %s", value, got, want)
		}
	}
	if _, err := ParseDate("01-13-2024"); err == nil {
		t.Fatal("expected error for impossible date")
	}
}

func TestValidatorDateOrder(t *testing.T) {
	v := NewValidator()
	start, ok := v.Date("start", "2024-02-01")
	if !ok {
		t.Fatal("start should parse")
	}
	end, ok := v.Date("end", "2024-01-01")
	if !ok {
		t.Fatal("end should parse")
	}
	v.DateOrder("start", start, "end", end)
	if !v.HasIssues() {
		t.Fatal("end before start must be an issue")
	}
}
