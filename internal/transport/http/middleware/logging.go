package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// accessEntry is one line of the JSON access log. Route is the chi
// pattern that matched (e.g. /api/v1/records/{module}), so log lines
// aggregate per endpoint rather than per record id.
type accessEntry struct {
	Timestamp string `json:"ts"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Route     string `json:"route,omitempty"`
	Status    int    `json:"status"`
	Bytes     int64  `json:"bytes"`
	Duration  int64  `json:"durationMs"`
	RequestID string `json:"requestId"`
}

type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(p []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(p)
	rec.bytes += int64(n)
	return n, err
}

func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		entry := accessEntry{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Method:    r.Method,
			Path:      r.URL.Path,
			Status:    recorder.status,
			Bytes:     recorder.bytes,
			Duration:  time.Since(start).Milliseconds(),
			RequestID: GetRequestID(r.Context()),
		}
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			entry.Route = routeCtx.RoutePattern()
		}

		payload, _ := json.Marshal(entry)
		log.Println(string(payload))
	})
}
