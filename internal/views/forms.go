package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/forms"
)

type fieldKind string

const (
	kindText     fieldKind = "text"
	kindEmail    fieldKind = "email"
	kindTel      fieldKind = "tel"
	kindURL      fieldKind = "url"
	kindTextarea fieldKind = "textarea"
	kindSelect   fieldKind = "select"
	kindHidden   fieldKind = "hidden"
)

type field struct {
	name      string
	label     string
	kind      fieldKind
	required  bool
	maxLength int
	options   []string
}

var (
	contactFields = []field{
		{name: "name", label: "Name", kind: kindText, required: true, maxLength: 120},
		{name: "email", label: "Email", kind: kindEmail, required: true, maxLength: 320},
		{name: "company", label: "Company", kind: kindText, maxLength: 200},
		{name: "phone", label: "Phone", kind: kindTel, maxLength: 40},
		{name: "subject", label: "Subject", kind: kindText, maxLength: 200},
		{name: "message", label: "Message", kind: kindTextarea, required: true, maxLength: 5000},
	}
	newsletterFields = []field{
		{name: "email", label: "Email", kind: kindEmail, required: true, maxLength: 320},
	}
	budgetOptions   = []string{"Under $25k", "$25k - $100k", "$100k - $500k", "Over $500k"}
	timelineOptions = []string{"As soon as possible", "1-3 months", "3-6 months", "Exploring options"}
)

func consultationFields(services []content.Service) []field {
	topics := make([]string, 0, len(services)+1)
	for _, service := range services {
		topics = append(topics, service.Name)
	}
	topics = append(topics, "Other")
	return []field{
		{name: "name", label: "Name", kind: kindText, required: true, maxLength: 120},
		{name: "email", label: "Email", kind: kindEmail, required: true, maxLength: 320},
		{name: "company", label: "Company", kind: kindText, maxLength: 200},
		{name: "phone", label: "Phone", kind: kindTel, maxLength: 40},
		{name: "service", label: "Service of interest", kind: kindSelect, options: topics},
		{name: "budget", label: "Budget", kind: kindSelect, options: budgetOptions},
		{name: "timeline", label: "Timeline", kind: kindSelect, options: timelineOptions},
		{name: "message", label: "Tell us about your project", kind: kindTextarea, maxLength: 5000},
	}
}

func careerFields(job content.Job) []field {
	return []field{
		{name: "jobId", kind: kindHidden},
		{name: "jobTitle", kind: kindHidden},
		{name: "name", label: "Full name", kind: kindText, required: true, maxLength: 120},
		{name: "email", label: "Email", kind: kindEmail, required: true, maxLength: 320},
		{name: "phone", label: "Phone", kind: kindTel, maxLength: 40},
		{name: "linkedinUrl", label: "LinkedIn profile", kind: kindURL, maxLength: 500},
		{name: "resumeUrl", label: "Link to your resume", kind: kindURL, maxLength: 500},
		{name: "coverLetter", label: "Why " + job.Title + "?", kind: kindTextarea, maxLength: 10000},
	}
}

// banner renders the state message above a form: success text while the
// success window is open, the error message after a failed submit.
func banner(snap forms.Snapshot) g.Node {
	switch {
	case snap.State == forms.StateSuccess && snap.Banner != "":
		return h.Div(h.Class("alert alert-success"), h.Role("status"), g.Text(snap.Banner))
	case snap.State == forms.StateError && snap.Banner != "":
		return h.Div(h.Class("alert alert-error"), h.Role("alert"),
			g.If(snap.Code != "", g.Attr("data-code", snap.Code)),
			g.Text(snap.Banner),
		)
	default:
		return nil
	}
}

func formControl(f field, snap forms.Snapshot, prefix string) g.Node {
	value := snap.Values[f.name]
	if f.kind == kindHidden {
		return h.Input(h.Type("hidden"), h.Name(f.name), h.Value(value))
	}

	id := prefix + "-" + f.name
	message := snap.FieldErrors[f.name]
	attrs := g.Group{
		h.ID(id),
		h.Name(f.name),
		g.If(f.required, h.Required()),
		g.If(f.maxLength > 0 && f.kind != kindSelect, g.Attr("maxlength", strconv.Itoa(f.maxLength))),
		g.If(snap.Submitting(), h.Disabled()),
		g.If(message != "", g.Group{h.Aria("invalid", "true"), h.Aria("describedby", id+"-error")}),
	}

	var control g.Node
	switch f.kind {
	case kindTextarea:
		control = h.Textarea(attrs, g.Attr("rows", "6"), g.Text(value))
	case kindSelect:
		control = h.Select(attrs,
			h.Option(h.Value(""), g.Text("Select…")),
			g.Map(f.options, func(option string) g.Node {
				return h.Option(h.Value(option), g.If(option == value, h.Selected()), g.Text(option))
			}),
		)
	default:
		control = h.Input(attrs, h.Type(string(f.kind)), h.Value(value))
	}

	return h.Div(c.Classes{"field": true, "has-error": message != ""},
		g.El("label", h.For(id), g.Text(f.label), g.If(f.required, h.Span(h.Aria("hidden", "true"), g.Text(" *")))),
		control,
		g.If(message != "", h.P(h.ID(id+"-error"), h.Class("field-error"), g.Text(message))),
	)
}

func (v *View) form(id, action, submit string, fields []field, snap forms.Snapshot) g.Node {
	label := submit
	if snap.Submitting() {
		label = "Sending…"
	}
	return g.El("form", h.ID(id), h.Class("site-form"), h.Action(action), h.Method("post"), g.Attr("novalidate"),
		banner(snap),
		g.Map(fields, func(f field) g.Node { return formControl(f, snap, id) }),
		h.Button(h.Type("submit"), g.If(snap.Submitting(), h.Disabled()), g.Text(label)),
	)
}

// ContactForm renders the general enquiry form.
func (v *View) ContactForm(snap forms.Snapshot) g.Node {
	return v.form("contact-form", v.routes.ContactPath(), "Send message", contactFields, snap)
}

// ConsultationForm renders the consultation request form. Services feed the
// topic select.
func (v *View) ConsultationForm(services []content.Service, snap forms.Snapshot) g.Node {
	return v.form("consultation-form", v.routes.ConsultationPath(), "Request consultation", consultationFields(services), snap)
}

// NewsletterForm renders the single field subscription form used in the
// footer and on the newsletter page.
func (v *View) NewsletterForm(snap forms.Snapshot) g.Node {
	return v.form("newsletter-form", v.routes.NewsletterPath(), "Subscribe", newsletterFields, snap)
}

// CareerForm renders the application form for job. The job id and title
// travel as hidden fields.
func (v *View) CareerForm(job content.Job, snap forms.Snapshot) g.Node {
	values := make(map[string]string, len(snap.Values)+2)
	for key, value := range snap.Values {
		values[key] = value
	}
	values["jobId"] = job.DocumentID
	values["jobTitle"] = job.Title
	snap.Values = values
	return v.form("career-form", v.routes.JobApplyPath(job.DocumentID), "Submit application", careerFields(job), snap)
}
