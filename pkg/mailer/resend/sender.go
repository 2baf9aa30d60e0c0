// Package resend implements mailer.Sender on top of the Resend API.
package resend

import (
	"context"
	"fmt"
	"sort"

	"github.com/resend/resend-go/v3"

	"github.com/cardinalconseils/contact-relay/pkg/mailer"
)

// Sender delivers emails through Resend.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a Resend sender. The configured API key is validated
// up front so a malformed credential fails at startup, not mid-request.
func New(cfg Config) (*Sender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}, nil
}

// Send implements mailer.Sender. It returns the message id assigned by
// Resend on success.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	if err := email.Validate(); err != nil {
		return "", err
	}

	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Tags:    convertTags(email.Tags),
	}

	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}

	return resp.Id, nil
}

// convertTags maps mailer.Tags to Resend's tag list in a stable order.
func convertTags(tags mailer.Tags) []resend.Tag {
	if len(tags) == 0 {
		return nil
	}

	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]resend.Tag, 0, len(names))
	for _, name := range names {
		result = append(result, resend.Tag{Name: name, Value: tags[name]})
	}
	return result
}
