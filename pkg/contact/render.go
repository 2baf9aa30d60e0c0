package contact

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/cardinalconseils/contact-relay/pkg/i18n"
)

// SiteURL is the public website linked in the message footer.
const SiteURL = "https://cardinalconseils.com"

//go:embed templates
var templatesFS embed.FS

// strictPolicy strips all HTML from user-provided text; the output is
// entity-escaped and safe to embed in the rendered document.
var (
	strictPolicy     *bluemonday.Policy
	strictPolicyOnce sync.Once
)

func sanitizeText(s string) string {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy.Sanitize(s)
}

// Message is a rendered email: subject plus HTML and plain-text bodies
// carrying the same information.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// Renderer turns validated submissions into bilingual email messages.
// Rendering is a pure function of the submission: identical input and
// locale produce byte-identical output.
type Renderer struct {
	bundle *i18n.Bundle
	tmpl   *template.Template
}

// NewRenderer creates a Renderer over the given translation bundle.
func NewRenderer(bundle *i18n.Bundle) (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/contact.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("contact: parsing email template: %w", err)
	}
	return &Renderer{bundle: bundle, tmpl: tmpl}, nil
}

type emailRow struct {
	Label string
	Value string
	Href  template.URL // mailto:/tel: link, empty for plain rows
}

type emailData struct {
	Title        string
	ContactInfo  string
	ProjectTitle string
	Footer       string
	SiteURL      string
	SiteHost     string
	Description  template.HTML
	Rows         []emailRow
}

// Render produces the subject, HTML and plain-text renderings of a
// submission in its locale. Optional fields that are absent produce no
// row or line at all.
func (r *Renderer) Render(sub Submission) (Message, error) {
	lang := string(sub.locale())
	t := func(key string, placeholders ...i18n.M) string {
		return r.bundle.T(lang, namespace, key, placeholders...)
	}

	subject := t("email.subject", i18n.M{"company": sub.Company})

	rows := []emailRow{
		{Label: t("labels.full_name"), Value: sub.FirstName + " " + sub.LastName},
		{Label: t("labels.company"), Value: sub.Company},
		{Label: t("labels.email"), Value: sub.Email, Href: template.URL("mailto:" + sub.Email)},
	}
	if sub.Phone != "" {
		rows = append(rows, emailRow{Label: t("labels.phone"), Value: sub.Phone, Href: template.URL("tel:" + sub.Phone)})
	}
	if sub.Sector != "" {
		rows = append(rows, emailRow{Label: t("labels.sector"), Value: sub.Sector})
	}
	if sub.Employees != "" {
		rows = append(rows, emailRow{Label: t("labels.employees"), Value: sub.Employees})
	}
	if sub.Budget != "" {
		rows = append(rows, emailRow{Label: t("labels.budget"), Value: sub.Budget})
	}

	data := emailData{
		Title:        t("email.title"),
		ContactInfo:  t("email.contact_info"),
		ProjectTitle: t("email.project_description"),
		Footer:       t("email.footer"),
		SiteURL:      SiteURL,
		SiteHost:     strings.TrimPrefix(SiteURL, "https://"),
		Description:  descriptionHTML(sub.Description),
		Rows:         rows,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("contact: rendering email: %w", err)
	}

	return Message{
		Subject: subject,
		HTML:    buf.String(),
		Text:    r.renderText(sub, t),
	}, nil
}

// descriptionHTML sanitizes the free-text description and converts
// newlines to line breaks. Empty input stays empty so the template
// omits the whole section.
func descriptionHTML(desc string) template.HTML {
	if desc == "" {
		return ""
	}
	sanitized := sanitizeText(desc)
	sanitized = strings.ReplaceAll(sanitized, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(sanitized, "\n", "<br>"))
}

// renderText produces the plain-text body: same field order and
// optional-field-omission rule as the HTML, no markup.
func (r *Renderer) renderText(sub Submission, t func(string, ...i18n.M) string) string {
	var b strings.Builder

	b.WriteString(t("email.title") + "\n\n")
	b.WriteString(t("email.contact_info") + ":\n")
	b.WriteString(t("labels.full_name") + ": " + sub.FirstName + " " + sub.LastName + "\n")
	b.WriteString(t("labels.company") + ": " + sub.Company + "\n")
	b.WriteString(t("labels.email") + ": " + sub.Email + "\n")

	if sub.Phone != "" {
		b.WriteString(t("labels.phone") + ": " + sub.Phone + "\n")
	}
	if sub.Sector != "" {
		b.WriteString(t("labels.sector") + ": " + sub.Sector + "\n")
	}
	if sub.Employees != "" {
		b.WriteString(t("labels.employees") + ": " + sub.Employees + "\n")
	}
	if sub.Budget != "" {
		b.WriteString(t("labels.budget") + ": " + sub.Budget + "\n")
	}

	if sub.Description != "" {
		b.WriteString("\n" + t("email.project_description") + ":\n" + sub.Description + "\n")
	}

	b.WriteString("\n---\n" + t("email.footer") + "\n" + SiteURL)

	return b.String()
}
