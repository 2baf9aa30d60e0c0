// Package middlewares provides the HTTP middleware used by the contact
// relay: CORS with preflight handling, request ID propagation, and
// panic recovery. All middleware uses the standard
// func(http.Handler) http.Handler shape and composes with chi.
package middlewares
