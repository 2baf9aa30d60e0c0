package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/cardinalconseils/contact-relay/pkg/logger"
)

type requestIDKey struct{}

// DefaultRequestIDHeaders are checked, in order, for an existing
// request ID so upstream tracing ids are preserved.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Request-Id", "X-Correlation-ID"}

// RequestID returns middleware that assigns each request a unique id,
// stores it in the context and echoes it in the X-Request-ID response
// header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var reqID string
			for _, header := range DefaultRequestIDHeaders {
				if v := r.Header.Get(header); v != "" {
					reqID = v
					break
				}
			}
			if reqID == "" {
				reqID = uuid.NewString()
			}

			w.Header().Set("X-Request-ID", reqID)
			ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID extracts the request ID from the context, or "".
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// RequestIDExtractor adds "request_id" to every log entry made with a
// request-scoped context.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := GetRequestID(ctx); v != "" {
			return slog.String("request_id", v), true
		}
		return slog.Attr{}, false
	}
}
