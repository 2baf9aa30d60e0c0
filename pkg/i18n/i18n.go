package i18n

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultLang is used when no default language is configured.
const DefaultLang = "en"

// M holds placeholder values for translation templates.
type M map[string]any

// Bundle holds flattened translations for a fixed set of languages.
// It is immutable after New returns.
type Bundle struct {
	// Key format: "lang:namespace:key.path" for O(1) lookups.
	translations map[string]string

	// Called when a key is missing from both the requested and the
	// default language. Useful for surfacing translation gaps in tests.
	missingKeyHandler func(lang, namespace, key string)

	defaultLang string
}

// Option configures a Bundle during construction.
type Option func(*Bundle) error

// New builds an immutable Bundle from the given options.
func New(opts ...Option) (*Bundle, error) {
	b := &Bundle{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("i18n: applying option: %w", err)
		}
	}

	if b.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	return b, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(b *Bundle) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		b.defaultLang = lang
		return nil
	}
}

// WithTranslations registers translations for one language and namespace.
// Nested maps are flattened into dot-separated keys.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(b *Bundle) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		for key, value := range flatten(translations, "") {
			b.translations[buildKey(lang, namespace, key)] = value
		}
		return nil
	}
}

// WithMissingKeyHandler registers a callback invoked for unresolved keys.
func WithMissingKeyHandler(fn func(lang, namespace, key string)) Option {
	return func(b *Bundle) error {
		b.missingKeyHandler = fn
		return nil
	}
}

// T resolves a key in the given language, falling back to the default
// language, then to the key itself. An optional placeholder map is
// applied to the resolved value.
func (b *Bundle) T(lang, namespace, key string, placeholders ...M) string {
	value, ok := b.lookup(lang, namespace, key)
	if !ok {
		if b.missingKeyHandler != nil {
			b.missingKeyHandler(lang, namespace, key)
		}
		return key
	}
	if len(placeholders) > 0 {
		return ReplacePlaceholders(value, placeholders[0])
	}
	return value
}

// Has reports whether the key exists for the given language without
// considering fallbacks.
func (b *Bundle) Has(lang, namespace, key string) bool {
	_, ok := b.translations[buildKey(lang, namespace, key)]
	return ok
}

// Keys returns the sorted key set registered for a language and namespace.
func (b *Bundle) Keys(lang, namespace string) []string {
	prefix := lang + ":" + namespace + ":"
	var keys []string
	for k := range b.translations {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, strings.TrimPrefix(k, prefix))
		}
	}
	sort.Strings(keys)
	return keys
}

// DefaultLanguage returns the configured fallback language.
func (b *Bundle) DefaultLanguage() string {
	return b.defaultLang
}

func (b *Bundle) lookup(lang, namespace, key string) (string, bool) {
	if lang != "" {
		if v, ok := b.translations[buildKey(lang, namespace, key)]; ok {
			return v, true
		}
	}
	if lang != b.defaultLang {
		if v, ok := b.translations[buildKey(b.defaultLang, namespace, key)]; ok {
			return v, true
		}
	}
	return "", false
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

// flatten converts nested translation maps into dot-separated keys.
// Non-string leaf values are stringified.
func flatten(m map[string]any, prefix string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			for fk, fv := range flatten(val, full) {
				out[fk] = fv
			}
		case string:
			out[full] = val
		default:
			out[full] = fmt.Sprintf("%v", val)
		}
	}
	return out
}
