package employee

import (
	"strings"
	"testing"
	"time"
)

func TestParseImportDate(t *testing.T) {
	want := time.Date(1988, 12, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
	}{
		{"dash separated", "15-12-1988"},
		{"slash separated", "15/12/1988"},
		{"iso", "1988-12-15"},
		{"dot separated", "15.12.1988"},
		{"en dash separated", "15–12–1988"},
		{"surrounding spaces", "  15-12-1988  "},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseImportDate(tc.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil || !got.Equal(want) {
				t.Fatalf("ParseImportDate(%q) = %v, want %v", tc.value, got, want)
			}
		})
	}
}

func TestParseImportDateMonthFirstFallback(t *testing.T) {
	got, err := ParseImportDate("12/15/1988")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(1988, 12, 15, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseImportDateBlanks(t *testing.T) {
	for _, value := range []string{"", " ", "NA", "n/a", "null", "None", "-", "--", "---"} {
		got, err := ParseImportDate(value)
		if err != nil {
			t.Fatalf("blank %q: unexpected error: %v", value, err)
		}
		if got != nil {
			t.Fatalf("blank %q: expected nil, got %v", value, got)
		}
	}
}

func TestParseImportDateInvalid(t *testing.T) {
	_, err := ParseImportDate("32-13-1988")
	if err == nil {
		t.Fatal("expected error for impossible date")
	}
	if !strings.Contains(err.Error(), "02-01-2006") {
		t.Fatalf("error should name accepted formats, got: %v", err)
	}
}

func TestFormatExportDate(t *testing.T) {
	if got := FormatExportDate(nil); got != "" {
		t.Fatalf("nil date should render empty, got %q", got)
	}
	d := time.Date(1988, 12, 15, 0, 0, 0, 0, time.UTC)
	if got := FormatExportDate(&d); got != "1988-12-15" {
		t.Fatalf("got %q, want 1988-12-15", got)
	}
}
