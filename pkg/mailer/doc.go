// Package mailer defines the provider-agnostic email contract used by
// the contact relay: a prepared Email message and a Sender that
// delivers it and reports the provider-assigned message id.
//
// Provider adapters live in subpackages (see mailer/resend). Tests use
// in-memory Sender fakes; nothing in this package performs I/O.
package mailer
