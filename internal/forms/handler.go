// Package forms validates form messages, delivers them to the CMS and tracks
// the state a visitor sees while a submission is in flight.
package forms

import (
	"context"
	"strings"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/ledger"
	"github.com/goliatone/go-consulting-site/internal/logging"
	"github.com/goliatone/go-consulting-site/pkg/interfaces"
)

const defaultSubmitTimeout = 10 * time.Second

// Submitter delivers a submission to the CMS.
type Submitter interface {
	SubmitForm(ctx context.Context, submission content.FormSubmission) error
}

// Recorder keeps a local record of each attempt.
type Recorder interface {
	Record(ctx context.Context, entry ledger.Entry) (ledger.Entry, error)
}

// RequestMeta describes the visitor request that produced a submission.
type RequestMeta struct {
	IPAddress string
	UserAgent string
	Referrer  string
}

type requestMetaKey struct{}

// WithRequestMeta attaches request metadata to ctx.
func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFrom returns the metadata stored by WithRequestMeta.
func RequestMetaFrom(ctx context.Context) (RequestMeta, bool) {
	if ctx == nil {
		return RequestMeta{}, false
	}
	meta, ok := ctx.Value(requestMetaKey{}).(RequestMeta)
	return meta, ok
}

// HandlerOption configures a Handler instance.
type HandlerOption[T Message] func(*Handler[T])

// Handler validates a form message and posts it to the CMS.
type Handler[T Message] struct {
	submitter Submitter
	recorder  Recorder
	logger    interfaces.Logger
	timeout   time.Duration
	now       func() time.Time
}

var (
	_ command.Commander[ContactMessage]      = (*Handler[ContactMessage])(nil)
	_ command.Commander[NewsletterMessage]   = (*Handler[NewsletterMessage])(nil)
	_ command.Commander[CareerMessage]       = (*Handler[CareerMessage])(nil)
	_ command.Commander[ConsultationMessage] = (*Handler[ConsultationMessage])(nil)
)

// NewHandler creates a handler that delivers messages through submitter.
func NewHandler[T Message](submitter Submitter, opts ...HandlerOption[T]) *Handler[T] {
	if submitter == nil {
		panic("forms: submitter cannot be nil")
	}
	h := &Handler[T]{
		submitter: submitter,
		logger:    logging.NoOp(),
		timeout:   defaultSubmitTimeout,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute satisfies command.Commander[T]. Invalid messages never reach the
// CMS. Ledger failures are logged and do not fail the submission.
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := msg.Validate(); err != nil {
		return wrapValidationError(err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return wrapContextError(err)
	}

	submission := h.submission(ctx, msg)

	logger := logging.WithFormType(logging.FromContext(ctx, h.logger), string(submission.FormType))
	logger = logging.WithFields(logger, map[string]any{"command": command.GetMessageType(msg)})
	logger.Debug("forms.submit.start")

	if schema, ok := SchemaFor(submission.FormType); ok {
		if err := schema.Validate(submission.FormData); err != nil {
			logger.Warn("forms.submit.schema_rejected", "error", err)
			return wrapSchemaError(err)
		}
	}

	err := h.submitter.SubmitForm(ctx, submission)
	h.record(ctx, logger, submission, err)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Error("forms.submit.context_error", "error", ctxErr)
			return wrapContextError(ctxErr)
		}
		logger.Error("forms.submit.failed", "error", err)
		return wrapDeliveryError(err)
	}

	logger.Info("forms.submit.success")
	return nil
}

func (h *Handler[T]) submission(ctx context.Context, msg T) content.FormSubmission {
	submission := content.FormSubmission{
		FormType:    msg.FormType(),
		FormData:    msg.FormData(),
		SubmittedAt: h.now().UTC(),
		ClientEmail: msg.ClientEmail(),
	}
	if meta, ok := RequestMetaFrom(ctx); ok {
		submission.IPAddress = strings.TrimSpace(meta.IPAddress)
		submission.UserAgent = strings.TrimSpace(meta.UserAgent)
		submission.Referrer = strings.TrimSpace(meta.Referrer)
	}
	return submission
}

func (h *Handler[T]) record(ctx context.Context, logger interfaces.Logger, submission content.FormSubmission, cause error) {
	if h.recorder == nil {
		return
	}
	entry := ledger.Entry{
		FormType:    string(submission.FormType),
		ClientEmail: submission.ClientEmail,
		Status:      ledger.StatusDelivered,
		SubmittedAt: submission.SubmittedAt,
	}
	if cause != nil {
		entry.Status = ledger.StatusFailed
		entry.Error = cause.Error()
	}
	// The ledger write must survive a submission that used up the deadline.
	if _, err := h.recorder.Record(context.WithoutCancel(ctx), entry); err != nil {
		logger.Warn("forms.ledger.record_failed", "error", err)
	}
}

// WithTimeout overrides the default submission timeout.
func WithTimeout[T Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		if timeout <= 0 {
			h.timeout = 0
			return
		}
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution. Defaults to a no-op logger.
func WithLogger[T Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		if logger == nil {
			h.logger = logging.NoOp()
			return
		}
		h.logger = logger
	}
}

// WithRecorder enables the submission ledger.
func WithRecorder[T Message](recorder Recorder) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.recorder = recorder
	}
}

// WithClock overrides the clock used for submittedAt.
func WithClock[T Message](now func() time.Time) HandlerOption[T] {
	return func(h *Handler[T]) {
		if now != nil {
			h.now = now
		}
	}
}

func (h *Handler[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.timeout)
}
