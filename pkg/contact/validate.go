package contact

import (
	"errors"
	"regexp"
	"strings"

	"github.com/cardinalconseils/contact-relay/pkg/i18n"
)

// namespace is the translation namespace for every contact string.
const namespace = "contact"

// emailRe is a deliberately permissive local@domain.tld check, not full
// RFC validation: no whitespace, no second @, and a dot in the domain.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	errMissingFields = errors.New("missing required fields")
	errInvalidEmail  = errors.New("invalid email format")
)

// Validate checks a submission and returns nil or an *Error with a
// message localized to the submission's locale. Required fields are
// checked first, then the email shape, so the two kinds stay
// distinguishable for the caller. Pure; no side effects.
func Validate(bundle *i18n.Bundle, sub Submission) error {
	lang := string(sub.locale())

	for _, field := range []string{sub.FirstName, sub.LastName, sub.Company, sub.Email} {
		if strings.TrimSpace(field) == "" {
			return &Error{
				Kind:    KindMissingRequiredFields,
				Message: bundle.T(lang, namespace, "errors.missing_required_fields"),
				Err:     errMissingFields,
			}
		}
	}

	if !emailRe.MatchString(sub.Email) {
		return &Error{
			Kind:    KindInvalidEmailFormat,
			Message: bundle.T(lang, namespace, "errors.invalid_email"),
			Err:     errInvalidEmail,
		}
	}

	return nil
}
