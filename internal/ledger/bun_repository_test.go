package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-consulting-site/internal/runtimeconfig"
	"github.com/goliatone/go-consulting-site/pkg/testsupport"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	db := testsupport.NewSQLiteMemoryDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestBunRepositoryRecordGetList(t *testing.T) {
	repo := NewBunRepository(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	first, err := repo.Record(ctx, Entry{FormType: "Contact", ClientEmail: "a@example.com", SubmittedAt: base})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if _, err := repo.Record(ctx, Entry{
		FormType:    "Career",
		ClientEmail: "b@example.com",
		Status:      StatusFailed,
		Error:       "cms unavailable",
		SubmittedAt: base.Add(time.Minute),
	}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	fetched, err := repo.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if fetched.FormType != "Contact" || fetched.ClientEmail != "a@example.com" {
		t.Fatalf("unexpected entry %+v", fetched)
	}

	entries, total, err := repo.List(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 2 || len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d/%d", len(entries), total)
	}
	if entries[0].FormType != "Career" {
		t.Fatalf("expected newest first, got %s", entries[0].FormType)
	}

	failed, total, err := repo.List(ctx, ListOptions{Status: StatusFailed})
	if err != nil || total != 1 || failed[0].Error != "cms unavailable" {
		t.Fatalf("unexpected failed list %+v (%d), %v", failed, total, err)
	}
}

func TestBunRepositoryGetMissing(t *testing.T) {
	repo := NewBunRepository(newTestDB(t))
	if _, err := repo.Get(context.Background(), uuid.New()); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestBunRepositoryWithCache(t *testing.T) {
	service, err := repocache.NewCacheService(repocache.DefaultConfig())
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}
	repo := NewBunRepositoryWithCache(newTestDB(t), service, repocache.NewDefaultKeySerializer())
	ctx := context.Background()

	recorded, err := repo.Record(ctx, Entry{FormType: "Newsletter", ClientEmail: "c@example.com"})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	for i := 0; i < 2; i++ {
		fetched, err := repo.Get(ctx, recorded.ID)
		if err != nil || fetched.ID != recorded.ID {
			t.Fatalf("Get() #%d = %+v, %v", i, fetched, err)
		}
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(runtimeconfig.LedgerConfig{Driver: "oracle", DSN: "x"})
	if !errors.Is(err, runtimeconfig.ErrLedgerDriverUnknown) {
		t.Fatalf("expected ErrLedgerDriverUnknown, got %v", err)
	}
	if _, err := Open(runtimeconfig.LedgerConfig{Driver: "sqlite"}); !errors.Is(err, runtimeconfig.ErrLedgerDSNRequired) {
		t.Fatalf("expected ErrLedgerDSNRequired, got %v", err)
	}
}
