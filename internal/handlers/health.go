package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Health serves the service banner and health report.
type Health struct {
	environment        string
	providerConfigured bool
}

// NewHealth creates the health endpoints handler.
func NewHealth(environment string, providerConfigured bool) *Health {
	return &Health{environment: environment, providerConfigured: providerConfigured}
}

// Register mounts the handler's routes.
func (h *Health) Register(r chi.Router) {
	r.Get("/", h.banner)
	r.Get("/api/health", h.health)
}

func (h *Health) banner(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Cardinal Conseils API Server",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"endpoints": []string{
			"GET / - Health check",
			"POST /api/contact - Contact form submission",
			"GET /api/health - Detailed health check",
		},
	})
}

func (h *Health) health(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"message":     "API is healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.environment,
		// Presence flag only; the credential value stays server-side.
		"emailConfigured": h.providerConfigured,
	})
}
