package middlewares

import (
	"log/slog"
	"net/http"
	"runtime"
)

// DefaultStackSize bounds the stack trace captured on panic.
const DefaultStackSize = 4096

// Recover returns middleware that converts panics into a generic JSON
// 500 response. The panic value and a bounded stack trace go to the
// log only; the client never sees either.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := make([]byte, DefaultStackSize)
					n := runtime.Stack(stack, false)

					log.ErrorContext(r.Context(), "panic recovered",
						"panic", rec,
						"stack", string(stack[:n]),
						"path", r.URL.Path,
					)

					w.Header().Set("Content-Type", "application/json; charset=utf-8")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"success":false,"message":"Server error. Please try again later."}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
