package middlewares_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinalconseils/contact-relay/middlewares"
	"github.com/cardinalconseils/contact-relay/pkg/logger"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	h := middlewares.Recover(logger.NewNope())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Server error. Please try again later.", body["message"])
	// The panic value must not leak to the client.
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestRecoverPassthrough(t *testing.T) {
	t.Parallel()

	h := middlewares.Recover(logger.NewNope())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
