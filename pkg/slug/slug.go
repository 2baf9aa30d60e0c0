// Package slug generates URL-safe identifiers from arbitrary strings.
//
// Input is Unicode-normalized (diacritics folded to ASCII), lowercased,
// and non-alphanumeric runs are collapsed into a single separator:
//
//	slug.Make("Café & Restaurant")        // "cafe-restaurant"
//	slug.Make("Acme Inc.", slug.MaxLength(4)) // "acme"
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSeparator joins words in generated slugs.
const DefaultSeparator = "-"

type config struct {
	separator rune
	maxLength int
}

// Option configures slug generation.
type Option func(*config)

// Separator sets the rune used between words.
func Separator(sep rune) Option {
	return func(c *config) {
		c.separator = sep
	}
}

// MaxLength truncates the slug to at most n runes, trimming any
// trailing separator left by the cut.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// foldDiacritics decomposes the input and strips combining marks, so
// "é" becomes "e". Characters outside Latin script remain and are
// later replaced by the separator.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts s into a slug.
func Make(s string, opts ...Option) string {
	cfg := &config{separator: []rune(DefaultSeparator)[0]}
	for _, opt := range opts {
		opt(cfg)
	}

	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	prevSep := true // suppress leading separator
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevSep = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevSep = false
		default:
			if !prevSep {
				b.WriteRune(cfg.separator)
				prevSep = true
			}
		}
	}

	out := strings.TrimRight(b.String(), string(cfg.separator))

	if cfg.maxLength > 0 {
		r := []rune(out)
		if len(r) > cfg.maxLength {
			out = strings.TrimRight(string(r[:cfg.maxLength]), string(cfg.separator))
		}
	}

	return out
}
