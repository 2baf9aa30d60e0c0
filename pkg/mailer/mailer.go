package mailer

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates no HTML content was provided.
	ErrNoContent = errors.New("email must have HTML content")
)

// Tags carries machine-readable metadata attached to an outbound
// message for the provider's analytics. Values are stringified by each
// provider adapter; they are never interpreted by this system.
type Tags map[string]string

// Email is a fully-prepared message ready for sending.
type Email struct {
	Tags    Tags     // Provider-side metadata
	Subject string   // Subject line
	HTML    string   // HTML body
	Text    string   // Plain text alternative
	From    string   // Override default sender (if provider allows)
	ReplyTo string   // Reply-to address
	To      []string // Recipients (at least one required)
}

// Validate checks the minimal fields every provider requires.
func (e *Email) Validate() error {
	if len(e.To) == 0 {
		return ErrNoRecipient
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if e.HTML == "" {
		return ErrNoContent
	}
	return nil
}

// Sender delivers a prepared Email and returns the provider-assigned
// message id.
type Sender interface {
	Send(ctx context.Context, email *Email) (string, error)
}

// Recipient formats a name and email into RFC 5322 address form.
// Returns "Name <email>" when a name is provided, otherwise the bare
// address.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
