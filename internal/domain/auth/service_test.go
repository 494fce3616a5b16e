package auth

import (
	"testing"
	"time"
)

func TestDefaultPassword(t *testing.T) {
	dob := time.Date(1993, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		dob    *time.Time
		hrmsID string
		want   string
	}{
		{
			name:   "birth date formats as DDMMYYYY",
			dob:    &dob,
			hrmsID: "TECH1018",
			want:   "15011993",
		},
		{
			name:   "no birth date uses prefixed tail",
			hrmsID: "TECH1018",
			want:   "Ngp@1018",
		},
		{
			name:   "short id left-padded with zeros",
			hrmsID: "77",
			want:   "Ngp@0077",
		},
		{
			name:   "exactly four characters",
			hrmsID: "4321",
			want:   "Ngp@4321",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := DefaultPassword(tc.dob, tc.hrmsID)
			if got != tc.want {
				t.Fatalf("DefaultPassword() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("15011993")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CheckPassword(hash, "15011993"); err != nil {
		t.Fatalf("expected password to verify: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch for wrong password")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	claims := Claims{UserID: "u1", Username: "TECH1018", EmployeeID: "e1", Staff: false}
	token, err := GenerateToken("secret", claims, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.UserID != "u1" || parsed.Username != "TECH1018" || parsed.EmployeeID != "e1" || parsed.Staff {
		t.Fatalf("claims mismatch: %+v", parsed)
	}

	if _, err := ParseToken("other", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestHasUsablePassword(t *testing.T) {
	if (User{}).HasUsablePassword() {
		t.Fatal("empty hash must be unusable")
	}
	if !(User{PasswordHash: "x"}).HasUsablePassword() {
		t.Fatal("non-empty hash must be usable")
	}
}
