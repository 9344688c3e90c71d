package forms

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeValidationFailed = "FORM_VALIDATION_FAILED"
	TextCodeSchemaRejected   = "FORM_SCHEMA_REJECTED"
	TextCodeDeliveryFailed   = "FORM_DELIVERY_FAILED"
	TextCodeContextCanceled  = "FORM_CONTEXT_CANCELED"
	TextCodeContextTimeout   = "FORM_CONTEXT_TIMEOUT"
	TextCodeContextError     = "FORM_CONTEXT_ERROR"
	TextCodeSubmitInProgress = "FORM_SUBMIT_IN_PROGRESS"
)

// ErrSubmitInProgress is returned when Submit is called on a form that is
// already waiting for the CMS.
var ErrSubmitInProgress = goerrors.New("form is already submitting", goerrors.CategoryConflict).
	WithTextCode(TextCodeSubmitInProgress)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.FromOzzoValidation(err, "form validation failed").
		WithTextCode(TextCodeValidationFailed)
}

func wrapSchemaError(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "form payload rejected").
		WithTextCode(TextCodeSchemaRejected)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "form submission cancelled").
			WithTextCode(TextCodeContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "form submission deadline exceeded").
			WithTextCode(TextCodeContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "form submission context error").
			WithTextCode(TextCodeContextError)
	}
}

// wrapDeliveryError re-tags a client failure as a command failure. The client
// error stays reachable through Unwrap.
func wrapDeliveryError(err error) error {
	if err == nil {
		return nil
	}
	wrapped := goerrors.New("form could not be delivered", goerrors.CategoryCommand).
		WithTextCode(TextCodeDeliveryFailed)
	wrapped.Source = err
	return wrapped
}

// FieldErrors returns per-field messages keyed by the form field name.
func FieldErrors(err error) map[string]string {
	var typed *goerrors.Error
	if !goerrors.As(err, &typed) || typed == nil {
		return nil
	}
	fields := typed.ValidationMap()
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// TextCode returns the go-errors text code carried by err, if any.
func TextCode(err error) string {
	var typed *goerrors.Error
	if goerrors.As(err, &typed) && typed != nil {
		return typed.TextCode
	}
	return ""
}

// Banner returns the user facing message for a failed submission. Raw error
// text is never shown.
func Banner(err error) string {
	switch TextCode(err) {
	case TextCodeValidationFailed, TextCodeSchemaRejected:
		return "Please check the highlighted fields and try again."
	case TextCodeContextTimeout:
		return "The request took too long. Please try again in a moment."
	case TextCodeSubmitInProgress:
		return "Your message is on its way."
	default:
		return "We couldn't send your message. Please try again."
	}
}
