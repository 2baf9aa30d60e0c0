// Package contact implements the contact submission relay: validation
// of inbound form submissions, bilingual (fr/en) rendering into a
// transactional email, and delivery through a mailer.Sender.
//
// The pipeline is hosting-agnostic. HTTP adapters translate request and
// response shapes; everything in this package is pure except the final
// Sender call.
//
//	svc, _ := contact.NewService(cfg, bundle, contact.WithSender(sender))
//	result, err := svc.Submit(ctx, sub)
//
// When no Sender is configured the service runs in simulation mode:
// valid submissions are acknowledged with a synthetic
// "simulation_<timestamp>" id and no provider client is ever involved.
package contact
