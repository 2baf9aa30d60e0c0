package resend

import (
	"errors"
	"strings"
)

// Resend issues API keys with a fixed prefix; anything else is a
// misconfigured credential and is rejected before any network call.
const apiKeyPrefix = "re_"

var (
	// ErrMissingAPIKey indicates no API key is configured.
	ErrMissingAPIKey = errors.New("resend: API key is not set")

	// ErrInvalidAPIKey indicates the configured key does not look like
	// a Resend key. The key value itself is never included in errors.
	ErrInvalidAPIKey = errors.New(`resend: API key has invalid format (must start with "re_")`)
)

// Config holds Resend provider configuration.
type Config struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

// Validate checks the credential shape without performing I/O.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if !strings.HasPrefix(c.APIKey, apiKeyPrefix) {
		return ErrInvalidAPIKey
	}
	return nil
}
