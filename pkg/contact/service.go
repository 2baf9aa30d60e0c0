package contact

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cardinalconseils/contact-relay/pkg/i18n"
	"github.com/cardinalconseils/contact-relay/pkg/logger"
	"github.com/cardinalconseils/contact-relay/pkg/mailer"
	"github.com/cardinalconseils/contact-relay/pkg/slug"
)

// DefaultSendTimeout bounds the outbound provider call.
const DefaultSendTimeout = 15 * time.Second

// simulationIDPrefix marks synthetic ids returned when no sender is
// configured.
const simulationIDPrefix = "simulation_"

// Config holds delivery addressing for the relay.
type Config struct {
	FromName    string
	FromEmail   string
	To          string
	SendTimeout time.Duration
}

// Result is the uniform outcome reported to the caller. Message is
// always one of the safe localized sentences; Error carries internal
// detail for logs and debugging, never shown as the primary message.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EmailID string `json:"emailId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Service is the contact submission relay: validate, render, deliver.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	config    Config
	bundle    *i18n.Bundle
	renderer  *Renderer
	sender    mailer.Sender // nil enables simulation mode
	senderErr error         // non-nil marks a misconfigured provider
	log       *slog.Logger
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithSender installs the delivery provider. Without a sender the
// service runs in simulation mode.
func WithSender(s mailer.Sender) Option {
	return func(svc *Service) {
		svc.sender = s
	}
}

// WithConfigurationError records that the provider credential is
// present but unusable. Submissions then fail with
// KindConfigurationError instead of silently falling into simulation.
func WithConfigurationError(err error) Option {
	return func(svc *Service) {
		svc.senderErr = err
	}
}

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(svc *Service) {
		svc.log = log
	}
}

// WithClock overrides the time source used for simulation ids.
func WithClock(now func() time.Time) Option {
	return func(svc *Service) {
		svc.now = now
	}
}

// NewService creates the relay service over the given translation
// bundle.
func NewService(cfg Config, bundle *i18n.Bundle, opts ...Option) (*Service, error) {
	renderer, err := NewRenderer(bundle)
	if err != nil {
		return nil, err
	}

	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = DefaultSendTimeout
	}

	svc := &Service{
		config:   cfg,
		bundle:   bundle,
		renderer: renderer,
		log:      logger.NewNope(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// Submit runs one submission through the pipeline: validate, render,
// deliver. Exactly one send attempt is made per call; there is no
// retry or queuing. On failure the returned error is always an *Error
// carrying a localized message.
func (s *Service) Submit(ctx context.Context, sub Submission) (Result, error) {
	lang := string(sub.locale())

	if err := Validate(s.bundle, sub); err != nil {
		return Result{}, err
	}

	if s.senderErr != nil {
		s.log.ErrorContext(ctx, "email provider misconfigured", "error", s.senderErr)
		return Result{}, &Error{
			Kind:    KindConfigurationError,
			Message: s.bundle.T(lang, namespace, "errors.configuration"),
			Err:     s.senderErr,
		}
	}

	if s.sender == nil {
		return s.simulate(ctx, sub), nil
	}

	msg, err := s.renderer.Render(sub)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to render contact email", "error", err)
		return Result{}, &Error{
			Kind:    KindDeliveryFailure,
			Message: s.bundle.T(lang, namespace, "errors.server_error"),
			Err:     err,
		}
	}

	email := &mailer.Email{
		From:    mailer.Recipient(s.config.FromName, s.config.FromEmail),
		To:      []string{s.config.To},
		ReplyTo: sub.Email,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
		Tags: mailer.Tags{
			"type":     "contact-form",
			"language": lang,
			"company":  slug.Make(sub.Company),
		},
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.config.SendTimeout)
	defer cancel()

	id, err := s.sender.Send(sendCtx, email)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to send contact email",
			"error", err,
			"company", sub.Company,
			"language", lang,
		)
		return Result{}, &Error{
			Kind:    KindDeliveryFailure,
			Message: s.bundle.T(lang, namespace, "errors.send_failed"),
			Err:     err,
		}
	}

	s.log.InfoContext(ctx, "contact email sent",
		"email_id", id,
		"company", sub.Company,
		"language", lang,
	)

	return Result{
		Success: true,
		Message: s.bundle.T(lang, namespace, "success.sent"),
		EmailID: id,
	}, nil
}

// Simulating reports whether the service runs without a configured
// provider.
func (s *Service) Simulating() bool {
	return s.sender == nil && s.senderErr == nil
}

// simulate acknowledges a valid submission without any provider
// involvement. Local development only: reachable solely when no
// credential is configured.
func (s *Service) simulate(ctx context.Context, sub Submission) Result {
	s.log.InfoContext(ctx, "contact form submission received (simulation mode)",
		"first_name", sub.FirstName,
		"last_name", sub.LastName,
		"company", sub.Company,
		"email", sub.Email,
		"language", string(sub.locale()),
	)

	return Result{
		Success: true,
		Message: s.bundle.T(string(sub.locale()), namespace, "success.simulation"),
		EmailID: simulationIDPrefix + strconv.FormatInt(s.now().UnixMilli(), 10),
	}
}
