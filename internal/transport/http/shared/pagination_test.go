package shared

import (
	"net/http/httptest"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantLimit  int
		wantOffset int
	}{
		{"defaults when absent", "/employees", 50, 0},
		{"explicit values", "/employees?limit=10&offset=30", 10, 30},
		{"limit clamped to max", "/employees?limit=900", 200, 0},
		{"garbage falls back", "/employees?limit=abc&offset=xyz", 50, 0},
		{"negative values fall back", "/employees?limit=-5&offset=-1", 50, 0},
		{"zero limit falls back", "/employees?limit=0", 50, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			p := ParsePagination(r, 50, 200)
			if p.Limit != tc.wantLimit || p.Offset != tc.wantOffset {
				t.Fatalf("got limit=%d offset=%d, want limit=%d offset=%d", p.Limit, p.Offset, tc.wantLimit, tc.wantOffset)
			}
		})
	}
}
