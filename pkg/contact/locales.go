package contact

import (
	"embed"
	"io/fs"

	"github.com/cardinalconseils/contact-relay/pkg/i18n"
)

//go:embed locales
var localesFS embed.FS

// Locales builds the translation bundle carrying the two fixed string
// tables (en, fr) used for every label and sentence in rendered
// messages and user-facing results.
func Locales() (*i18n.Bundle, error) {
	sub, err := fs.Sub(localesFS, "locales")
	if err != nil {
		return nil, err
	}
	return i18n.New(
		i18n.WithDefaultLanguage(string(LocaleEN)),
		i18n.WithYAMLDir(sub),
	)
}
