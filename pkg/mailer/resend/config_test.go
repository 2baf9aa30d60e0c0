package resend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinalconseils/contact-relay/pkg/mailer/resend"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		err := resend.Config{}.Validate()
		assert.ErrorIs(t, err, resend.ErrMissingAPIKey)
	})

	t.Run("wrong prefix", func(t *testing.T) {
		t.Parallel()
		err := resend.Config{APIKey: "sk_live_secret123"}.Validate()
		require.ErrorIs(t, err, resend.ErrInvalidAPIKey)
		// The credential value must never leak through the error.
		assert.NotContains(t, err.Error(), "secret123")
	})

	t.Run("valid key", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, resend.Config{APIKey: "re_123456"}.Validate())
	})
}

func TestNewRejectsBadConfig(t *testing.T) {
	t.Parallel()

	_, err := resend.New(resend.Config{APIKey: "not-a-resend-key"})
	assert.ErrorIs(t, err, resend.ErrInvalidAPIKey)
}
