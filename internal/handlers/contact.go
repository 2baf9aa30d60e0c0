// Package handlers translates the HTTP wire contract to and from the
// contact relay pipeline. Handlers stay thin: decode, dispatch, map
// errors to status codes.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardinalconseils/contact-relay/pkg/contact"
	"github.com/cardinalconseils/contact-relay/pkg/i18n"
)

// Contact handles contact-form submissions.
type Contact struct {
	svc    *contact.Service
	bundle *i18n.Bundle
	log    *slog.Logger
}

// NewContact creates the contact endpoint handler.
func NewContact(svc *contact.Service, bundle *i18n.Bundle, log *slog.Logger) *Contact {
	return &Contact{svc: svc, bundle: bundle, log: log}
}

// Register mounts the handler's routes.
func (h *Contact) Register(r chi.Router) {
	r.Post("/api/contact", h.submit)
}

func (h *Contact) submit(w http.ResponseWriter, r *http.Request) {
	var sub contact.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		JSON(w, http.StatusBadRequest, contact.Result{
			Success: false,
			Message: "Invalid request body.",
		})
		return
	}

	result, err := h.svc.Submit(r.Context(), sub)
	if err != nil {
		if e := contact.AsError(err); e != nil {
			res := contact.Result{Success: false, Message: e.Message}
			// Internal detail is exposed only on server-side failures,
			// and never carries the credential or a stack trace.
			if e.HTTPStatus() >= http.StatusInternalServerError {
				res.Error = e.Detail()
			}
			JSON(w, e.HTTPStatus(), res)
			return
		}

		// Last-resort conversion for anything unexpected, in the
		// request's declared language.
		h.log.ErrorContext(r.Context(), "contact submission failed unexpectedly", "error", err)
		JSON(w, http.StatusInternalServerError, contact.Result{
			Success: false,
			Message: h.bundle.T(string(contact.ParseLocale(string(sub.Locale))), "contact", "errors.server_error"),
		})
		return
	}

	JSON(w, http.StatusOK, result)
}
