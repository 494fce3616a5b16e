package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servicebook/internal/domain/auth"
)

func staffRequest(t *testing.T, secret string, staff bool) *http.Request {
	t.Helper()
	token, err := auth.GenerateToken(secret, auth.Claims{UserID: "u1", Staff: staff}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRequireStaff(t *testing.T) {
	secret := "test-secret"
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Auth(secret)(RequireStaff(next))

	tests := []struct {
		name string
		req  *http.Request
		want int
	}{
		{"anonymous", httptest.NewRequest(http.MethodGet, "/", nil), http.StatusUnauthorized},
		{"non-staff", staffRequest(t, secret, false), http.StatusForbidden},
		{"staff", staffRequest(t, secret, true), http.StatusNoContent},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, tc.req)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
