// Package requestctx carries the request id through a request's context
// and decides which client-supplied ids are acceptable.
package requestctx

import "context"

type ctxKey string

const requestIDKey ctxKey = "request_id"

// maxIDLen bounds client-supplied request ids; anything longer is
// replaced with a generated one.
const maxIDLen = 64

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}

// Sanitize returns the inbound id if it is usable as-is, or "" when the
// caller should generate a fresh one. Only short tokens of letters,
// digits, dots, underscores and hyphens pass, so ids are safe to echo in
// headers and log lines.
func Sanitize(raw string) string {
	if raw == "" || len(raw) > maxIDLen {
		return ""
	}
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '_' || r == '-':
		default:
			return ""
		}
	}
	return raw
}
