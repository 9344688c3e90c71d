package forms

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/ledger"
	"github.com/goliatone/go-consulting-site/internal/strapi"
	"github.com/goliatone/go-consulting-site/internal/strapi/strapitest"
)

type stubSubmitter struct {
	mu          sync.Mutex
	submissions []content.FormSubmission
	err         error
	block       bool
}

func (s *stubSubmitter) SubmitForm(ctx context.Context, submission content.FormSubmission) error {
	s.mu.Lock()
	s.submissions = append(s.submissions, submission)
	s.mu.Unlock()
	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return s.err
}

func (s *stubSubmitter) calls() []content.FormSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]content.FormSubmission(nil), s.submissions...)
}

type failingRecorder struct{}

func (failingRecorder) Record(context.Context, ledger.Entry) (ledger.Entry, error) {
	return ledger.Entry{}, errors.New("disk full")
}

var fixedNow = time.Date(2024, 6, 3, 9, 15, 0, 0, time.UTC)

func validContact() ContactMessage {
	return ContactMessage{
		Name:    "Ada Lovelace",
		Email:   "  Ada@Example.com ",
		Company: "Analytical Engines",
		Message: "We would like to talk about a diagnostic.",
	}
}

func TestHandlerSubmitsContactMessage(t *testing.T) {
	submitter := &stubSubmitter{}
	recorder := ledger.NewMemoryRepository()
	h := NewHandler[ContactMessage](submitter,
		WithRecorder[ContactMessage](recorder),
		WithClock[ContactMessage](func() time.Time { return fixedNow }),
	)

	ctx := WithRequestMeta(context.Background(), RequestMeta{IPAddress: "10.0.0.1", UserAgent: "test-agent"})
	if err := h.Execute(ctx, validContact()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := submitter.calls()
	if len(calls) != 1 {
		t.Fatalf("expected one submission, got %d", len(calls))
	}
	got := calls[0]
	if got.FormType != content.FormContact {
		t.Fatalf("expected contact form type, got %q", got.FormType)
	}
	if got.ClientEmail != "ada@example.com" {
		t.Fatalf("expected normalised email, got %q", got.ClientEmail)
	}
	if !got.SubmittedAt.Equal(fixedNow) {
		t.Fatalf("expected submittedAt %v, got %v", fixedNow, got.SubmittedAt)
	}
	if got.IPAddress != "10.0.0.1" || got.UserAgent != "test-agent" {
		t.Fatalf("expected request meta to be copied, got %+v", got)
	}
	if _, ok := got.FormData["phone"]; ok {
		t.Fatalf("expected blank phone to be dropped, got %v", got.FormData)
	}
	if got.FormData["name"] != "Ada Lovelace" {
		t.Fatalf("unexpected form data %v", got.FormData)
	}

	entries, total, err := recorder.List(context.Background(), ledger.ListOptions{})
	if err != nil || total != 1 {
		t.Fatalf("expected one ledger entry, got %d (%v)", total, err)
	}
	if entries[0].Status != ledger.StatusDelivered || entries[0].FormType != "Contact" {
		t.Fatalf("unexpected ledger entry %+v", entries[0])
	}
}

func TestHandlerValidationShortCircuitsDelivery(t *testing.T) {
	submitter := &stubSubmitter{}
	recorder := ledger.NewMemoryRepository()
	h := NewHandler[ContactMessage](submitter, WithRecorder[ContactMessage](recorder))

	msg := validContact()
	msg.Email = "not-an-email"
	msg.Message = ""

	err := h.Execute(context.Background(), msg)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if TextCode(err) != TextCodeValidationFailed {
		t.Fatalf("expected %s, got %q", TextCodeValidationFailed, TextCode(err))
	}
	fields := FieldErrors(err)
	if fields["email"] == "" || fields["message"] == "" {
		t.Fatalf("expected email and message field errors, got %v", fields)
	}
	if len(submitter.calls()) != 0 {
		t.Fatalf("expected no request to be sent")
	}
	if _, total, _ := recorder.List(context.Background(), ledger.ListOptions{}); total != 0 {
		t.Fatalf("expected no ledger entry for invalid input, got %d", total)
	}
}

func TestHandlerDeliveryFailureIsCommandError(t *testing.T) {
	cause := errors.New("connection reset")
	submitter := &stubSubmitter{err: cause}
	recorder := ledger.NewMemoryRepository()
	h := NewHandler[NewsletterMessage](submitter, WithRecorder[NewsletterMessage](recorder))

	err := h.Execute(context.Background(), NewsletterMessage{Email: "reader@example.com"})
	if err == nil {
		t.Fatalf("expected delivery error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if TextCode(err) != TextCodeDeliveryFailed {
		t.Fatalf("expected %s, got %q", TextCodeDeliveryFailed, TextCode(err))
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to stay reachable, got %v", err)
	}

	entries, _, _ := recorder.List(context.Background(), ledger.ListOptions{Status: ledger.StatusFailed})
	if len(entries) != 1 || entries[0].Error == "" {
		t.Fatalf("expected failed ledger entry, got %+v", entries)
	}
}

func TestHandlerTimeout(t *testing.T) {
	submitter := &stubSubmitter{block: true}
	h := NewHandler[NewsletterMessage](submitter, WithTimeout[NewsletterMessage](20*time.Millisecond))

	err := h.Execute(context.Background(), NewsletterMessage{Email: "reader@example.com"})
	if TextCode(err) != TextCodeContextTimeout {
		t.Fatalf("expected %s, got %v", TextCodeContextTimeout, err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestHandlerCancelledContext(t *testing.T) {
	submitter := &stubSubmitter{}
	h := NewHandler[NewsletterMessage](submitter)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Execute(ctx, NewsletterMessage{Email: "reader@example.com"})
	if TextCode(err) != TextCodeContextCanceled {
		t.Fatalf("expected %s, got %v", TextCodeContextCanceled, err)
	}
	if len(submitter.calls()) != 0 {
		t.Fatalf("expected no request after cancellation")
	}
}

func TestHandlerLedgerFailureDoesNotFailSubmission(t *testing.T) {
	h := NewHandler[NewsletterMessage](&stubSubmitter{}, WithRecorder[NewsletterMessage](failingRecorder{}))
	if err := h.Execute(context.Background(), NewsletterMessage{Email: "reader@example.com"}); err != nil {
		t.Fatalf("expected ledger errors to be swallowed, got %v", err)
	}
}

func TestHandlerPostsToCMS(t *testing.T) {
	srv := strapitest.New(t)
	client := strapi.New(srv.Config(), nil)
	h := NewHandler[CareerMessage](client)

	err := h.Execute(context.Background(), CareerMessage{
		JobID:       "job-1",
		JobTitle:    "Senior Consultant",
		Name:        "Grace Hopper",
		Email:       "grace@example.com",
		LinkedinURL: "https://www.linkedin.com/in/grace",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	submissions := srv.Submissions()
	if len(submissions) != 1 {
		t.Fatalf("expected one submission, got %d", len(submissions))
	}
	if submissions[0]["formType"] != "Career" {
		t.Fatalf("expected Career form type, got %v", submissions[0]["formType"])
	}
	data, ok := submissions[0]["formData"].(map[string]any)
	if !ok || data["jobId"] != "job-1" {
		t.Fatalf("expected jobId in formData, got %v", submissions[0]["formData"])
	}
}

func TestHandlerCMSRejectionKeepsStatus(t *testing.T) {
	srv := strapitest.New(t)
	srv.Fail(strapi.ResourceFormSubmissions, http.StatusBadRequest)
	h := NewHandler[NewsletterMessage](strapi.New(srv.Config(), nil))

	err := h.Execute(context.Background(), NewsletterMessage{Email: "reader@example.com"})
	var statusErr *strapi.StatusError
	if !errors.As(err, &statusErr) || statusErr.Status != http.StatusBadRequest {
		t.Fatalf("expected wrapped status error, got %v", err)
	}
	if Banner(err) == "" || Banner(err) == err.Error() {
		t.Fatalf("expected a friendly banner, got %q", Banner(err))
	}
}

func TestSchemaRejectsUnknownFields(t *testing.T) {
	schema, ok := SchemaFor(content.FormContact)
	if !ok {
		t.Fatalf("expected contact schema")
	}
	if err := schema.Validate(validContact().FormData()); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
	payload := validContact().FormData()
	payload["password"] = "hunter2"
	if err := schema.Validate(payload); err == nil {
		t.Fatalf("expected unknown field to be rejected")
	}
	if err := wrapSchemaError(schema.Validate(payload)); TextCode(err) != TextCodeSchemaRejected {
		t.Fatalf("expected %s, got %v", TextCodeSchemaRejected, err)
	}
}

func TestDecodeUsesJSONFieldNames(t *testing.T) {
	msg, err := Decode[CareerMessage](map[string]string{
		"jobId":       "job-7",
		"name":        "Ada",
		"email":       "ada@example.com",
		"coverLetter": "Hello",
		"ignored":     "x",
	})
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if msg.JobID != "job-7" || msg.CoverLetter != "Hello" || msg.Email != "ada@example.com" {
		t.Fatalf("unexpected message %+v", msg)
	}
}

func TestEmailRuleChecksFormatOnly(t *testing.T) {
	// .invalid never resolves, so a lookup-based rule would reject these.
	valid := "Someone@Nowhere.invalid"
	if err := (ContactMessage{Name: "Ada", Email: valid, Message: "Hello there, we need help."}).Validate(); err != nil {
		t.Fatalf("contact: unexpected error %v", err)
	}
	if err := (NewsletterMessage{Email: valid}).Validate(); err != nil {
		t.Fatalf("newsletter: unexpected error %v", err)
	}
	if err := (NewsletterMessage{Email: "not-an-email"}).Validate(); err == nil {
		t.Fatalf("expected malformed address to fail")
	}
}
