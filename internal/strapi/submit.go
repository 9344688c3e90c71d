package strapi

import (
	"context"
	"net/http"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/logging"
)

// SubmitForm posts a submission to /api/form-submissions wrapped as
// {"data": {...}}. Unlike reads, failures are returned to the caller.
func (c *Client) SubmitForm(ctx context.Context, submission content.FormSubmission) error {
	payload := map[string]any{"data": submission}
	if err := c.do(ctx, http.MethodPost, ResourceFormSubmissions, nil, payload, nil); err != nil {
		logger := logging.WithFormType(logging.FromContext(ctx, c.logger), string(submission.FormType))
		logger.Error("strapi.submit.failed", "error", err)
		return goerrors.Wrap(err, goerrors.CategoryExternal, "form submission was not accepted").
			WithTextCode(TextCodeSubmitFailed)
	}
	return nil
}
