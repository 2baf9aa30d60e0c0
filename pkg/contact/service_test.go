package contact_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinalconseils/contact-relay/pkg/contact"
	"github.com/cardinalconseils/contact-relay/pkg/mailer"
)

// fakeSender records sent emails and returns a canned id or error.
type fakeSender struct {
	emails []*mailer.Email
	id     string
	err    error
}

func (f *fakeSender) Send(_ context.Context, email *mailer.Email) (string, error) {
	f.emails = append(f.emails, email)
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

func newService(t *testing.T, opts ...contact.Option) *contact.Service {
	t.Helper()
	bundle, err := contact.Locales()
	require.NoError(t, err)

	svc, err := contact.NewService(contact.Config{
		FromName:  "Cardinal Conseils",
		FromEmail: "contact@cardinalconseils.com",
		To:        "info@cardinalconseils.com",
	}, bundle, opts...)
	require.NoError(t, err)
	return svc
}

func TestServiceSubmit(t *testing.T) {
	t.Parallel()

	t.Run("delivers rendered email once", func(t *testing.T) {
		t.Parallel()
		sender := &fakeSender{id: "abc123"}
		svc := newService(t, contact.WithSender(sender))

		result, err := svc.Submit(context.Background(), validSubmission())
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, "abc123", result.EmailID)
		assert.Equal(t, "Your message has been sent successfully! We will contact you shortly.", result.Message)

		require.Len(t, sender.emails, 1)
		email := sender.emails[0]
		assert.Equal(t, []string{"info@cardinalconseils.com"}, email.To)
		assert.Equal(t, "Cardinal Conseils <contact@cardinalconseils.com>", email.From)
		assert.Equal(t, "john@acme.com", email.ReplyTo)
		assert.Contains(t, email.Subject, "Acme")
		assert.NotEmpty(t, email.HTML)
		assert.NotEmpty(t, email.Text)
	})

	t.Run("tags outbound message with analytics metadata", func(t *testing.T) {
		t.Parallel()
		sender := &fakeSender{id: "abc123"}
		svc := newService(t, contact.WithSender(sender))

		sub := validSubmission()
		sub.Company = "Café Lenoir & Fils"
		sub.Locale = contact.LocaleFR

		_, err := svc.Submit(context.Background(), sub)
		require.NoError(t, err)

		require.Len(t, sender.emails, 1)
		assert.Equal(t, mailer.Tags{
			"type":     "contact-form",
			"language": "fr",
			"company":  "cafe-lenoir-fils",
		}, sender.emails[0].Tags)
	})

	t.Run("validation failure never reaches the sender", func(t *testing.T) {
		t.Parallel()
		sender := &fakeSender{id: "abc123"}
		svc := newService(t, contact.WithSender(sender))

		sub := validSubmission()
		sub.Email = "not-an-email"

		_, err := svc.Submit(context.Background(), sub)
		e := contact.AsError(err)
		require.NotNil(t, e)
		assert.Equal(t, contact.KindInvalidEmailFormat, e.Kind)
		assert.Empty(t, sender.emails)
	})

	t.Run("provider failure maps to delivery failure", func(t *testing.T) {
		t.Parallel()
		sender := &fakeSender{err: errors.New("resend: 422 invalid from address")}
		svc := newService(t, contact.WithSender(sender))

		sub := validSubmission()
		sub.Locale = contact.LocaleFR

		_, err := svc.Submit(context.Background(), sub)
		e := contact.AsError(err)
		require.NotNil(t, e)
		assert.Equal(t, contact.KindDeliveryFailure, e.Kind)
		assert.Equal(t, 500, e.HTTPStatus())
		// Safe localized sentence, never the raw provider error.
		assert.Equal(t, "Erreur lors de l'envoi du message. Veuillez réessayer.", e.Message)
		assert.Contains(t, e.Detail(), "422")
		// Exactly one attempt, no retries.
		assert.Len(t, sender.emails, 1)
	})

	t.Run("configuration error fails before any send", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, contact.WithConfigurationError(errors.New("API key has invalid format")))

		_, err := svc.Submit(context.Background(), validSubmission())
		e := contact.AsError(err)
		require.NotNil(t, e)
		assert.Equal(t, contact.KindConfigurationError, e.Kind)
		assert.Equal(t, 500, e.HTTPStatus())
		assert.Equal(t, "Email service configuration error. Please contact support.", e.Message)
		assert.False(t, svc.Simulating())
	})
}

func TestServiceSimulationMode(t *testing.T) {
	t.Parallel()

	fixed := time.UnixMilli(1700000000000)
	svc := newService(t, contact.WithClock(func() time.Time { return fixed }))
	require.True(t, svc.Simulating())

	t.Run("valid submission gets synthetic id", func(t *testing.T) {
		t.Parallel()
		result, err := svc.Submit(context.Background(), validSubmission())
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, "simulation_1700000000000", result.EmailID)
		assert.Contains(t, result.Message, "Simulation mode")
	})

	t.Run("localized simulation message", func(t *testing.T) {
		t.Parallel()
		sub := validSubmission()
		sub.Locale = contact.LocaleFR

		result, err := svc.Submit(context.Background(), sub)
		require.NoError(t, err)
		assert.Contains(t, result.Message, "Mode simulation")
	})

	t.Run("invalid submission still rejected", func(t *testing.T) {
		t.Parallel()
		sub := validSubmission()
		sub.Company = ""

		_, err := svc.Submit(context.Background(), sub)
		e := contact.AsError(err)
		require.NotNil(t, e)
		assert.Equal(t, contact.KindMissingRequiredFields, e.Kind)
	})
}
