package middleware

import (
	"net/http"
	"strings"
)

// BodyLimit caps JSON request bodies. Multipart uploads are exempt; the
// upload handlers enforce their own ceilings.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				if maxBytes > 0 && !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
					r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
