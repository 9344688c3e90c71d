package content

import "time"

// FormType identifies which form produced a submission.
type FormType string

const (
	FormContact      FormType = "Contact"
	FormCareer       FormType = "Career"
	FormNewsletter   FormType = "Newsletter"
	FormConsultation FormType = "Consultation"
)

func (t FormType) Valid() bool {
	switch t {
	case FormContact, FormCareer, FormNewsletter, FormConsultation:
		return true
	default:
		return false
	}
}

// FormSubmission is the write-only record posted to the CMS. It is never
// read back.
type FormSubmission struct {
	FormType    FormType       `json:"formType"`
	FormData    map[string]any `json:"formData"`
	SubmittedAt time.Time      `json:"submittedAt"`
	ClientEmail string         `json:"clientEmail"`
	IPAddress   string         `json:"ipAddress,omitempty"`
	UserAgent   string         `json:"userAgent,omitempty"`
	Referrer    string         `json:"referrer,omitempty"`
}
