package ledger

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps entries in process. It is used when the ledger
// feature is disabled and in tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

func (r *MemoryRepository) Record(_ context.Context, entry Entry) (Entry, error) {
	entry = prepare(entry, r.now().UTC())
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *MemoryRepository) Get(_ context.Context, id uuid.UUID) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return Entry{}, ErrEntryNotFound
}

// List returns matching entries newest first along with the total match
// count before paging.
func (r *MemoryRepository) List(_ context.Context, opts ListOptions) ([]Entry, int, error) {
	r.mu.RLock()
	matched := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		if opts.matches(entry) {
			matched = append(matched, entry)
		}
	}
	r.mu.RUnlock()

	slices.SortStableFunc(matched, func(a, b Entry) int {
		return b.SubmittedAt.Compare(a.SubmittedAt)
	})
	total := len(matched)
	start := min(max(opts.Offset, 0), total)
	end := total
	if opts.Limit > 0 {
		end = min(start+opts.Limit, total)
	}
	return matched[start:end], total, nil
}
