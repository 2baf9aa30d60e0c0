package contact

// Locale selects which of the two fixed string tables renders labels
// and sentences.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleFR Locale = "fr"
)

// ParseLocale maps an inbound language tag to a supported Locale.
// Anything other than "fr" falls back to English.
func ParseLocale(s string) Locale {
	if s == string(LocaleFR) {
		return LocaleFR
	}
	return LocaleEN
}

// Submission is the set of contact-form fields for one inquiry. It is
// transient: constructed from a request body, validated, rendered once
// and discarded.
type Submission struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Company     string `json:"company"`
	Sector      string `json:"sector,omitempty"`
	Employees   string `json:"employees,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email"`
	Description string `json:"description,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Locale      Locale `json:"language,omitempty"`
}

// locale returns the submission's locale, defaulting to English.
func (s Submission) locale() Locale {
	return ParseLocale(string(s.Locale))
}
