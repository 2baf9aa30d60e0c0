// Command server runs the Cardinal Conseils contact relay API.
package main

import (
	"context"
	"os"

	"github.com/cardinalconseils/contact-relay/config"
	"github.com/cardinalconseils/contact-relay/internal/handlers"
	"github.com/cardinalconseils/contact-relay/internal/httpserver"
	"github.com/cardinalconseils/contact-relay/middlewares"
	"github.com/cardinalconseils/contact-relay/pkg/contact"
	"github.com/cardinalconseils/contact-relay/pkg/logger"
	"github.com/cardinalconseils/contact-relay/pkg/mailer/resend"
)

func main() {
	cfg := config.Load()

	log := logger.NewWithSentry(logger.SentryConfig{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Environment,
	}, middlewares.RequestIDExtractor()).With("app", "contact-relay")

	bundle, err := contact.Locales()
	if err != nil {
		log.Error("failed to load locale tables", "error", err)
		os.Exit(1)
	}

	svcOpts := []contact.Option{contact.WithLogger(log)}
	switch {
	case cfg.ResendAPIKey == "":
		log.Warn("RESEND_API_KEY is not set, running in simulation mode; submissions will be acknowledged but not delivered")
	default:
		sender, err := resend.New(resend.Config{
			APIKey:      cfg.ResendAPIKey,
			SenderEmail: cfg.FromEmail,
			SenderName:  cfg.FromName,
		})
		if err != nil {
			// Keep serving so the frontend gets a clean 500 instead of
			// connection errors, but fail every submission loudly.
			log.Error("email provider misconfigured", "error", err)
			svcOpts = append(svcOpts, contact.WithConfigurationError(err))
		} else {
			svcOpts = append(svcOpts, contact.WithSender(sender))
		}
	}

	svc, err := contact.NewService(contact.Config{
		FromName:    cfg.FromName,
		FromEmail:   cfg.FromEmail,
		To:          cfg.ContactEmailTo,
		SendTimeout: cfg.SendTimeout,
	}, bundle, svcOpts...)
	if err != nil {
		log.Error("failed to build contact service", "error", err)
		os.Exit(1)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Service:        svc,
		Bundle:         bundle,
		Log:            log,
		AllowedOrigins: cfg.AllowedOrigins,
		Environment:    cfg.Environment,
	})

	if err := httpserver.Run(context.Background(), httpserver.Config{Addr: ":" + cfg.Port}, router, log); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
