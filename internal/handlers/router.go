package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardinalconseils/contact-relay/middlewares"
	"github.com/cardinalconseils/contact-relay/pkg/contact"
	"github.com/cardinalconseils/contact-relay/pkg/i18n"
)

// RouterConfig carries everything the HTTP surface needs.
type RouterConfig struct {
	Service        *contact.Service
	Bundle         *i18n.Bundle
	Log            *slog.Logger
	AllowedOrigins []string
	Environment    string
}

// NewRouter assembles the service's HTTP handler: middleware stack,
// contact endpoint, health endpoints, and JSON 404/405 responses.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.RequestID())
	r.Use(middlewares.Recover(cfg.Log))
	r.Use(middlewares.CORS(middlewares.WithAllowOrigins(cfg.AllowedOrigins...)))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		JSON(w, http.StatusNotFound, contact.Result{Success: false, Message: "Not found."})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		JSON(w, http.StatusMethodNotAllowed, contact.Result{
			Success: false,
			Message: "Method not allowed. Only POST requests are accepted.",
		})
	})

	NewContact(cfg.Service, cfg.Bundle, cfg.Log).Register(r)
	NewHealth(cfg.Environment, !cfg.Service.Simulating()).Register(r)

	return r
}
