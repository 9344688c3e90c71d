package forms

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-consulting-site/internal/content"
)

const (
	contactMessageType      = "site.forms.contact"
	newsletterMessageType   = "site.forms.newsletter"
	careerMessageType       = "site.forms.career"
	consultationMessageType = "site.forms.consultation"
)

// Message is a form payload that can be turned into a CMS submission.
type Message interface {
	command.Message
	Validate() error
	FormType() content.FormType
	ClientEmail() string
	FormData() map[string]any
}

// ContactMessage is posted by the contact page.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (ContactMessage) Type() string { return contactMessageType }

func (m ContactMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&m.Email, validation.Required, is.EmailFormat),
		validation.Field(&m.Phone, validation.Length(0, 40)),
		validation.Field(&m.Message, validation.Required, validation.Length(1, 5000)),
	)
}

func (ContactMessage) FormType() content.FormType { return content.FormContact }
func (m ContactMessage) ClientEmail() string      { return normalizeEmail(m.Email) }

func (m ContactMessage) FormData() map[string]any {
	return compact(map[string]any{
		"name":    m.Name,
		"email":   normalizeEmail(m.Email),
		"company": m.Company,
		"phone":   m.Phone,
		"subject": m.Subject,
		"message": m.Message,
	})
}

// NewsletterMessage is posted by the footer signup.
type NewsletterMessage struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (NewsletterMessage) Type() string { return newsletterMessageType }

func (m NewsletterMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Email, validation.Required, is.EmailFormat),
	)
}

func (NewsletterMessage) FormType() content.FormType { return content.FormNewsletter }
func (m NewsletterMessage) ClientEmail() string      { return normalizeEmail(m.Email) }

func (m NewsletterMessage) FormData() map[string]any {
	return compact(map[string]any{
		"email": normalizeEmail(m.Email),
		"name":  m.Name,
	})
}

// CareerMessage is an application for one job.
type CareerMessage struct {
	JobID       string `json:"jobId"`
	JobTitle    string `json:"jobTitle"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LinkedinURL string `json:"linkedinUrl"`
	ResumeURL   string `json:"resumeUrl"`
	CoverLetter string `json:"coverLetter"`
}

func (CareerMessage) Type() string { return careerMessageType }

func (m CareerMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.JobID, validation.Required),
		validation.Field(&m.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&m.Email, validation.Required, is.EmailFormat),
		validation.Field(&m.LinkedinURL, is.URL),
		validation.Field(&m.ResumeURL, is.URL),
		validation.Field(&m.CoverLetter, validation.Length(0, 10000)),
	)
}

func (CareerMessage) FormType() content.FormType { return content.FormCareer }
func (m CareerMessage) ClientEmail() string      { return normalizeEmail(m.Email) }

func (m CareerMessage) FormData() map[string]any {
	return compact(map[string]any{
		"jobId":       m.JobID,
		"jobTitle":    m.JobTitle,
		"name":        m.Name,
		"email":       normalizeEmail(m.Email),
		"phone":       m.Phone,
		"linkedinUrl": m.LinkedinURL,
		"resumeUrl":   m.ResumeURL,
		"coverLetter": m.CoverLetter,
	})
}

// ConsultationMessage books an initial consultation.
type ConsultationMessage struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Budget   string `json:"budget"`
	Timeline string `json:"timeline"`
	Message  string `json:"message"`
}

func (ConsultationMessage) Type() string { return consultationMessageType }

func (m ConsultationMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&m.Email, validation.Required, is.EmailFormat),
		validation.Field(&m.Company, validation.Required),
		validation.Field(&m.Service, validation.Required),
		validation.Field(&m.Message, validation.Length(0, 5000)),
	)
}

func (ConsultationMessage) FormType() content.FormType { return content.FormConsultation }
func (m ConsultationMessage) ClientEmail() string      { return normalizeEmail(m.Email) }

func (m ConsultationMessage) FormData() map[string]any {
	return compact(map[string]any{
		"name":     m.Name,
		"email":    normalizeEmail(m.Email),
		"company":  m.Company,
		"phone":    m.Phone,
		"service":  m.Service,
		"budget":   m.Budget,
		"timeline": m.Timeline,
		"message":  m.Message,
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// compact trims values and drops blank optional fields.
func compact(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for key, value := range values {
		if s, ok := value.(string); ok {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			out[key] = s
			continue
		}
		out[key] = value
	}
	return out
}
