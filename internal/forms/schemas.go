package forms

import (
	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/validation"
)

// Payload schemas guard the formData object that reaches the CMS. They run
// after message validation, on the compacted payload.
var schemas = map[content.FormType]*validation.Schema{
	content.FormContact: validation.MustCompile("contact",
		validation.Required("name", 120),
		validation.Required("email", 320),
		validation.Optional("company", 200),
		validation.Optional("phone", 40),
		validation.Optional("subject", 200),
		validation.Required("message", 5000),
	),
	content.FormNewsletter: validation.MustCompile("newsletter",
		validation.Required("email", 320),
		validation.Optional("name", 120),
	),
	content.FormCareer: validation.MustCompile("career",
		validation.Required("jobId", 0),
		validation.Optional("jobTitle", 0),
		validation.Required("name", 120),
		validation.Required("email", 320),
		validation.Optional("phone", 40),
		validation.Optional("linkedinUrl", 0),
		validation.Optional("resumeUrl", 0),
		validation.Optional("coverLetter", 10000),
	),
	content.FormConsultation: validation.MustCompile("consultation",
		validation.Required("name", 120),
		validation.Required("email", 320),
		validation.Required("company", 200),
		validation.Optional("phone", 40),
		validation.Required("service", 200),
		validation.Optional("budget", 0),
		validation.Optional("timeline", 0),
		validation.Optional("message", 5000),
	),
}

// SchemaFor returns the payload schema registered for formType.
func SchemaFor(formType content.FormType) (*validation.Schema, bool) {
	schema, ok := schemas[formType]
	return schema, ok
}
