// Package ledger keeps a local record of every form submission attempt.
// The CMS is write-only for submissions, so this is the only place the site
// can answer "did that message go through".
package ledger

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var ErrEntryNotFound = errors.New("ledger: entry not found")

// Status is the delivery outcome of a submission.
type Status string

const (
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

// Entry is one submission attempt.
type Entry struct {
	bun.BaseModel `bun:"table:submission_ledger,alias:sl"`

	ID          uuid.UUID `bun:",pk,type:uuid" json:"id"`
	FormType    string    `bun:"form_type,notnull" json:"form_type"`
	ClientEmail string    `bun:"client_email" json:"client_email"`
	Status      Status    `bun:"status,notnull" json:"status"`
	Error       string    `bun:"error" json:"error,omitempty"`
	SubmittedAt time.Time `bun:"submitted_at,notnull" json:"submitted_at"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// ListOptions filters and pages List results. Zero values mean no filter.
type ListOptions struct {
	FormType string
	Status   Status
	Limit    int
	Offset   int
}

// Repository stores ledger entries.
type Repository interface {
	Record(ctx context.Context, entry Entry) (Entry, error)
	Get(ctx context.Context, id uuid.UUID) (Entry, error)
	List(ctx context.Context, opts ListOptions) ([]Entry, int, error)
}

// prepare fills the id and timestamps of a new entry.
func prepare(entry Entry, now time.Time) Entry {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.SubmittedAt.IsZero() {
		entry.SubmittedAt = now
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.ClientEmail = strings.ToLower(strings.TrimSpace(entry.ClientEmail))
	if entry.Status == "" {
		entry.Status = StatusDelivered
	}
	return entry
}

func (o ListOptions) matches(entry Entry) bool {
	if o.FormType != "" && !strings.EqualFold(o.FormType, entry.FormType) {
		return false
	}
	if o.Status != "" && o.Status != entry.Status {
		return false
	}
	return true
}
