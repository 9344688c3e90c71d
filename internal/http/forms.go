package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/goliatone/go-consulting-site/internal/forms"
)

const maxFormBytes = 64 << 10

// submit runs one posted form through the state machine and returns the
// snapshot to render with its response status.
func submit[T forms.Message](s *Site, r *http.Request, handler *forms.Handler[T], overrides map[string]string, success string) (forms.Snapshot, int) {
	values := forms.Values(r.PostForm)
	for key, value := range overrides {
		values[key] = value
	}
	logger := s.log(r)
	opts := []forms.FormOption{
		forms.WithValues(values),
		forms.WithSuccessMessage(success),
		forms.WithObserver(func(t forms.Transition) {
			logger.Debug("http.form.transition", "path", r.URL.Path, "from", string(t.From), "to", string(t.To))
		}),
	}
	if s.successWindow > 0 {
		opts = append(opts, forms.WithSuccessWindow(s.successWindow))
	}
	form := forms.NewForm(opts...)

	ctx := forms.WithRequestMeta(r.Context(), requestMeta(r))
	err := form.Submit(ctx, func(ctx context.Context, values map[string]string) error {
		msg, err := forms.Decode[T](values)
		if err != nil {
			return err
		}
		return handler.Execute(ctx, msg)
	})
	snap := form.Snapshot()
	form.Stop()
	return snap, submitStatus(err)
}

func submitStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch forms.TextCode(err) {
	case forms.TextCodeValidationFailed, forms.TextCodeSchemaRejected:
		return http.StatusUnprocessableEntity
	case forms.TextCodeContextTimeout:
		return http.StatusGatewayTimeout
	case forms.TextCodeDeliveryFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Site) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		status := http.StatusBadRequest
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		http.Error(w, http.StatusText(status), status)
		return false
	}
	return true
}

func (s *Site) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	snap, status := submit(s, r, s.contact, nil, "Thank you! We'll be in touch soon.")
	page, err := s.pages.Contact(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, status, page.Chrome, s.view.ContactPage(page, snap))
}

func (s *Site) handleConsultationSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	snap, status := submit(s, r, s.consultation, nil, "Thank you! A partner will contact you to schedule your consultation.")
	page, err := s.pages.Contact(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, status, page.Chrome, s.view.ConsultationPage(page, snap))
}

func (s *Site) handleNewsletterSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	snap, status := submit(s, r, s.newsletter, nil, "Thanks for subscribing!")
	chrome, err := s.pages.Chrome(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, status, chrome, s.view.NewsletterPage(chrome, snap))
}

// handleJobApply only accepts applications for a job that resolves. The job
// id and title come from the resolved posting, never from the posted form.
func (s *Site) handleJobApply(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	page, err := s.pages.Job(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !page.Outcome.Found() {
		s.render(w, r, http.StatusNotFound, page.Chrome, s.view.JobPage(page, forms.Snapshot{}))
		return
	}
	overrides := map[string]string{"jobId": page.Job.DocumentID, "jobTitle": page.Job.Title}
	snap, status := submit(s, r, s.career, overrides, "Thank you for applying! Our team will review your application.")
	s.render(w, r, status, page.Chrome, s.view.JobPage(page, snap))
}
