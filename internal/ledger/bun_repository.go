package ledger

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewEntryRepository creates the generic repository for ledger rows.
func NewEntryRepository(db *bun.DB) repository.Repository[*Entry] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Entry]{
		NewRecord: func() *Entry { return &Entry{} },
		GetID: func(entry *Entry) uuid.UUID {
			return entry.ID
		},
		SetID: func(entry *Entry, id uuid.UUID) {
			entry.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(entry *Entry) string {
			return entry.ID.String()
		},
	})
}

// BunRepository implements Repository with optional caching.
type BunRepository struct {
	repo repository.Repository[*Entry]
	now  func() time.Time
}

// NewBunRepository creates a ledger repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates a ledger repository with caching support.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	base := NewEntryRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunRepository{repo: base, now: time.Now}
}

func (r *BunRepository) Record(ctx context.Context, entry Entry) (Entry, error) {
	prepared := prepare(entry, r.now().UTC())
	record, err := r.repo.Create(ctx, &prepared)
	if err != nil {
		return Entry{}, fmt.Errorf("ledger repository error: %w", err)
	}
	return *record, nil
}

func (r *BunRepository) Get(ctx context.Context, id uuid.UUID) (Entry, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return Entry{}, mapRepositoryError(err)
	}
	return *record, nil
}

func (r *BunRepository) List(ctx context.Context, opts ListOptions) ([]Entry, int, error) {
	filter := repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		if opts.FormType != "" {
			q = q.Where("?TableAlias.form_type = ?", opts.FormType)
		}
		if opts.Status != "" {
			q = q.Where("?TableAlias.status = ?", string(opts.Status))
		}
		return q.Order("submitted_at DESC")
	})

	var (
		records []*Entry
		total   int
		err     error
	)
	if opts.Limit > 0 {
		records, total, err = r.repo.List(ctx, filter, repository.SelectPaginate(opts.Limit, max(opts.Offset, 0)))
	} else {
		records, total, err = r.repo.List(ctx, filter)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("ledger repository error: %w", err)
	}
	out := make([]Entry, 0, len(records))
	for _, record := range records {
		out = append(out, *record)
	}
	return out, total, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return ErrEntryNotFound
	}
	return fmt.Errorf("ledger repository error: %w", err)
}
