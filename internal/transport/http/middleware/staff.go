package middleware

import (
	"net/http"

	"servicebook/internal/transport/http/api"
)

// RequireStaff gates console routes to accounts carrying the staff flag.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		if !user.Staff {
			api.Fail(w, http.StatusForbidden, "forbidden", "staff access required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
