// Package site is the runtime facade of the consulting firm website: it
// wires the CMS client, fallback tables, page loaders and HTTP surface from
// a single Config.
package site

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/goliatone/go-consulting-site/internal/di"
	"github.com/goliatone/go-consulting-site/internal/insights"
	"github.com/goliatone/go-consulting-site/internal/ledger"
	"github.com/goliatone/go-consulting-site/pkg/interfaces"
)

// InsightItem is one entry of the latest insights feed.
type InsightItem = insights.Item

// Submission is one row of the local submission ledger.
type Submission = ledger.Entry

// SubmissionFilter narrows Submissions results.
type SubmissionFilter = ledger.ListOptions

// ErrLedgerDisabled is returned by Submissions when the ledger is off.
var ErrLedgerDisabled = di.ErrLedgerDisabled

// Module represents the top level site runtime.
type Module struct {
	container *di.Container
}

// New constructs a site module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Logger returns the module logger for name.
func (m *Module) Logger(name string) interfaces.Logger {
	return m.container.Logger(name)
}

// Handler returns the HTTP handler serving every site route.
func (m *Module) Handler() (http.Handler, error) {
	return m.container.Site().Handler()
}

// Check performs one authenticated read against the CMS.
func (m *Module) Check(ctx context.Context) error {
	return m.container.Client().Ping(ctx)
}

// LatestInsights returns the feed served at /api/insights/latest.
func (m *Module) LatestInsights(ctx context.Context) []InsightItem {
	return m.container.InsightsService().Latest(ctx)
}

// Submissions lists ledger entries newest first.
func (m *Module) Submissions(ctx context.Context, filter SubmissionFilter) ([]Submission, int, error) {
	repo, err := m.container.Ledger()
	if err != nil {
		return nil, 0, err
	}
	return repo.List(ctx, filter)
}

// Migrate prepares the ledger schema.
func (m *Module) Migrate(ctx context.Context) error {
	return m.container.Migrate(ctx)
}

// Close releases resources held by the module.
func (m *Module) Close() error {
	return m.container.Close()
}

// Serve runs the HTTP server until ctx is done, then shuts it down within
// the configured shutdown timeout.
func (m *Module) Serve(ctx context.Context) error {
	handler, err := m.Handler()
	if err != nil {
		return err
	}
	cfg := m.container.Config.Server
	logger := m.Logger("site.server")

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server.listening", "addr", listener.Addr().String())
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	logger.Info("server.shutdown")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
