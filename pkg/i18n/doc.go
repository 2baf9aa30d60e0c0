// Package i18n provides static translation tables for fixed, known-at-build
// locales. Tables are loaded once at construction time and the resulting
// Bundle is immutable, so it is safe for concurrent use without locking.
//
// Translations are addressed by (language, namespace, key):
//
//	bundle, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithYAMLDir(localesFS),
//	)
//
//	msg := bundle.T("fr", "contact", "errors.missing_required_fields")
//
// Values may contain {{name}} placeholders, substituted via an optional
// trailing map:
//
//	bundle.T("en", "contact", "email.subject", i18n.M{"company": "Acme"})
//
// Lookups fall back to the default language; a key absent from both
// returns the key itself so missing translations are visible rather
// than silent.
package i18n
