package i18n

import "errors"

var (
	// ErrEmptyLanguage indicates an empty language code was provided.
	ErrEmptyLanguage = errors.New("i18n: language code cannot be empty")

	// ErrEmptyNamespace indicates an empty namespace was provided.
	ErrEmptyNamespace = errors.New("i18n: namespace cannot be empty")

	// ErrInvalidFile indicates a translation file could not be parsed
	// or does not follow the {lang}/{namespace}.yaml convention.
	ErrInvalidFile = errors.New("i18n: invalid translation file")
)
