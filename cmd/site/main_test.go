package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	site "github.com/goliatone/go-consulting-site"
	"github.com/goliatone/go-consulting-site/internal/strapi"
	"github.com/goliatone/go-consulting-site/internal/strapi/strapitest"
	"github.com/goliatone/go-consulting-site/pkg/testsupport"
)

func setupEnv(t *testing.T) *strapitest.Server {
	t.Helper()
	srv := strapitest.New(t)
	t.Setenv("CMS_BASE_URL", srv.URL)
	t.Setenv("CMS_API_TOKEN", strapitest.Token)
	t.Setenv("SITE_FEATURES_LOGGER", "false")
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLatestPrintsFeed(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "latest")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	var items []site.InsightItem
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(items) != 3 {
		t.Fatalf("expected three items, got %d", len(items))
	}
}

func TestCheck(t *testing.T) {
	srv := setupEnv(t)
	srv.SetSingle(strapi.ResourceGlobalSettings, map[string]any{"siteName": "Meridian Advisory"})

	out, err := run(t, "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "cms ok") {
		t.Fatalf("unexpected output %q", out)
	}

	srv.Fail(strapi.ResourceGlobalSettings, 500)
	if _, err := run(t, "check"); err == nil {
		t.Fatalf("expected check to fail when the CMS errors")
	}
}

func TestMissingCMSConfig(t *testing.T) {
	t.Setenv("CMS_BASE_URL", "")
	t.Setenv("CMS_API_TOKEN", "")
	if _, err := run(t, "latest"); !errors.Is(err, site.ErrCMSBaseURLRequired) {
		t.Fatalf("expected missing base url error, got %v", err)
	}
}

func TestSubmissionsRequiresLedger(t *testing.T) {
	setupEnv(t)
	if _, err := run(t, "submissions"); !errors.Is(err, site.ErrLedgerDisabled) {
		t.Fatalf("expected ledger disabled error, got %v", err)
	}
}

func TestSubmissionsListsLedger(t *testing.T) {
	setupEnv(t)
	t.Setenv("SITE_FEATURES_LEDGER", "true")
	t.Setenv("SITE_LEDGER_DSN", testsupport.SQLiteMemoryDSN(t.Name()))

	out, err := run(t, "submissions", "--type", "Contact")
	if err != nil {
		t.Fatalf("submissions: %v", err)
	}
	if !strings.Contains(out, "TYPE") || !strings.Contains(out, "0 of 0 submissions") {
		t.Fatalf("unexpected output %q", out)
	}
}
