package di_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goliatone/go-consulting-site/internal/di"
	"github.com/goliatone/go-consulting-site/internal/ledger"
	"github.com/goliatone/go-consulting-site/internal/runtimeconfig"
	"github.com/goliatone/go-consulting-site/internal/strapi/strapitest"
	"github.com/goliatone/go-consulting-site/pkg/testsupport"
)

func testConfig(srv *strapitest.Server) runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.CMS = srv.Config()
	cfg.Site.PublicURL = "https://www.example.com"
	cfg.Features.Logger = false
	return cfg
}

func TestNewContainerValidatesConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if _, err := di.NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrCMSBaseURLRequired) {
		t.Fatalf("expected missing base url error, got %v", err)
	}
}

func TestContainerWithoutLedger(t *testing.T) {
	srv := strapitest.New(t)
	container, err := di.NewContainer(testConfig(srv))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	t.Cleanup(func() { _ = container.Close() })

	if _, err := container.Ledger(); !errors.Is(err, di.ErrLedgerDisabled) {
		t.Fatalf("expected ErrLedgerDisabled, got %v", err)
	}
	if container.LoggerProvider() != nil {
		t.Fatalf("expected no logger provider when logging is disabled")
	}
	if container.Logger("site.test") == nil {
		t.Fatalf("expected a no-op logger")
	}
	if err := container.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate without database: %v", err)
	}
	if items := container.InsightsService().Latest(context.Background()); len(items) != 3 {
		t.Fatalf("expected padded insights, got %d", len(items))
	}
}

func TestContainerLoggerProvider(t *testing.T) {
	srv := strapitest.New(t)
	cfg := testConfig(srv)
	cfg.Features.Logger = true
	cfg.Logging.Level = "error"

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	if container.LoggerProvider() == nil {
		t.Fatalf("expected go-logger provider")
	}
}

func TestContainerRecordsSubmissionsInLedger(t *testing.T) {
	srv := strapitest.New(t)
	cfg := testConfig(srv)
	cfg.Features.Ledger = true
	cfg.Features.LedgerCache = true
	cfg.Ledger.Driver = "sqlite"
	cfg.Ledger.DSN = testsupport.SQLiteMemoryDSN(t.Name())

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	t.Cleanup(func() { _ = container.Close() })
	if err := container.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	handler, err := container.Site().Handler()
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	form := url.Values{"email": {"Reader@Example.com"}}
	req := httptest.NewRequest(http.MethodPost, "/newsletter", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	repo, err := container.Ledger()
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}
	entries, total, err := repo.List(context.Background(), ledger.ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(entries) != 1 {
		t.Fatalf("expected one ledger entry, got %d", total)
	}
	if entries[0].FormType != "Newsletter" || entries[0].Status != ledger.StatusDelivered {
		t.Fatalf("unexpected ledger entry %+v", entries[0])
	}
	if entries[0].ClientEmail != "reader@example.com" {
		t.Fatalf("expected normalised email, got %q", entries[0].ClientEmail)
	}
}
