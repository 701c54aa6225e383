package relay

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"
)

// Form field names posted by the site's contact form.
const (
	FieldName          = "name"
	FieldEmail         = "email"
	FieldBusinessEmail = "businessEmail"
	FieldCompany       = "company"
	FieldSubject       = "subject"
	FieldMessage       = "message"
	FieldHoneypot      = "hp_field"

	defaultSubject = "Website contact"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email address")
)

// Submission is one contact form post.
type Submission struct {
	Name          string
	Email         string
	BusinessEmail string
	Company       string
	Subject       string
	Message       string
	Honeypot      string
}

// submissionFromRequest reads the posted fields. The request form must
// already be parsed. An absent subject gets the default; a blank one stays
// blank and fails validation.
func submissionFromRequest(r *http.Request) Submission {
	field := func(key string) string {
		return strings.TrimSpace(r.PostForm.Get(key))
	}
	s := Submission{
		Name:          field(FieldName),
		Email:         field(FieldEmail),
		BusinessEmail: field(FieldBusinessEmail),
		Company:       field(FieldCompany),
		Subject:       field(FieldSubject),
		Message:       field(FieldMessage),
		Honeypot:      r.PostForm.Get(FieldHoneypot),
	}
	if _, ok := r.PostForm[FieldSubject]; !ok {
		s.Subject = defaultSubject
	}
	return s
}

// IsBot reports whether the hidden honeypot field was filled in.
func (s Submission) IsBot() bool {
	return s.Honeypot != ""
}

// Validate checks required presence, then both addresses.
func (s Submission) Validate() error {
	for _, v := range []string{s.Name, s.Email, s.BusinessEmail, s.Company, s.Subject, s.Message} {
		if v == "" {
			return ErrMissingFields
		}
	}
	if !validEmail(s.Email) || !validEmail(s.BusinessEmail) {
		return ErrInvalidEmail
	}
	return nil
}

// ReplyTo is the address replies should go to.
func (s Submission) ReplyTo() string {
	if s.BusinessEmail != "" {
		return s.BusinessEmail
	}
	return s.Email
}

// validEmail accepts a bare addr-spec with a dotted domain.
func validEmail(v string) bool {
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v || addr.Name != "" {
		return false
	}
	at := strings.LastIndex(v, "@")
	if at <= 0 {
		return false
	}
	domain := v[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
