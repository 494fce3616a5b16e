package requestctx

import (
	"context"
	"strings"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc-123")
	if got := GetRequestID(ctx); got != "abc-123" {
		t.Fatalf("got %q, want abc-123", got)
	}
	if got := GetRequestID(context.Background()); got != "" {
		t.Fatalf("empty context should yield empty id, got %q", got)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"uuid passes", "0b5a9c3e-4f10-47d2-9f55-1d4c8a1b2c3d", "0b5a9c3e-4f10-47d2-9f55-1d4c8a1b2c3d"},
		{"dotted token passes", "gw.node_1-42", "gw.node_1-42"},
		{"empty rejected", "", ""},
		{"spaces rejected", "abc 123", ""},
		{"newline rejected", "abc\n123", ""},
		{"non-ascii rejected", "req-é", ""},
		{"overlong rejected", strings.Repeat("a", 65), ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.raw); got != tc.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
