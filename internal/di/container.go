package di

import (
	"context"
	"errors"
	"net/http"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-consulting-site/internal/fallback"
	sitehttp "github.com/goliatone/go-consulting-site/internal/http"
	"github.com/goliatone/go-consulting-site/internal/insights"
	"github.com/goliatone/go-consulting-site/internal/ledger"
	"github.com/goliatone/go-consulting-site/internal/logging"
	"github.com/goliatone/go-consulting-site/internal/logging/gologger"
	"github.com/goliatone/go-consulting-site/internal/media"
	"github.com/goliatone/go-consulting-site/internal/pages"
	"github.com/goliatone/go-consulting-site/internal/richtext"
	"github.com/goliatone/go-consulting-site/internal/routes"
	"github.com/goliatone/go-consulting-site/internal/runtimeconfig"
	"github.com/goliatone/go-consulting-site/internal/strapi"
	"github.com/goliatone/go-consulting-site/internal/views"
	"github.com/goliatone/go-consulting-site/pkg/interfaces"
)

// ErrLedgerDisabled is returned when ledger access is requested while the
// ledger feature is off.
var ErrLedgerDisabled = errors.New("di: submission ledger is disabled")

// Container wires the site runtime.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	httpClient     *http.Client
	now            func() time.Time

	bunDB         *bun.DB
	ownsDB        bool
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	store    *fallback.Store
	routes   *routes.Manager
	resolver *media.Resolver
	renderer *richtext.Renderer
	client   *strapi.Client
	ledger   ledger.Repository

	insightsSvc *insights.Service
	pageSvc     *pages.Service
	view        *views.View
	site        *sitehttp.Site
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the go-logger provider built from config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithHTTPClient sets the transport used for CMS requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithBunDB supplies the ledger database instead of opening one from config.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the cache used in front of the ledger repository.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLedger overrides the ledger repository.
func WithLedger(repo ledger.Repository) Option {
	return func(c *Container) {
		c.ledger = repo
	}
}

// WithFallbackStore replaces the embedded fallback tables.
func WithFallbackStore(store *fallback.Store) Option {
	return func(c *Container) {
		c.store = store
	}
}

// WithClock overrides the clock used for dates shown on pages.
func WithClock(now func() time.Time) Option {
	return func(c *Container) {
		if now != nil {
			c.now = now
		}
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Ledger.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if err := c.configureLedger(); err != nil {
		return nil, err
	}
	c.configureContent()
	c.configureSite()
	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Features.LedgerCache {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		cfg.TTL = c.cacheTTL
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureLedger() error {
	if c.ledger != nil || !c.Config.Features.Ledger {
		return nil
	}
	if c.bunDB == nil {
		db, err := ledger.Open(c.Config.Ledger)
		if err != nil {
			return err
		}
		c.bunDB = db
		c.ownsDB = true
	}
	c.configureCacheDefaults()
	c.ledger = ledger.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	return nil
}

func (c *Container) configureContent() {
	cfg := c.Config
	if c.store == nil {
		c.store = fallback.Default()
	}

	c.routes = routes.New(cfg.Site.PublicURL, cfg.CMS.BaseURL)
	c.resolver = media.NewResolver(cfg.CMS.BaseURL, cfg.CMS.UploadsPath)
	c.renderer = richtext.NewRenderer(
		richtext.WithEngineOptions(richtext.EngineOptions{
			HardWraps:    cfg.Markdown.HardWraps,
			AllowRawHTML: cfg.Markdown.AllowRawHTML,
		}),
		richtext.WithImageResolver(c.resolver.Resolve),
		richtext.WithLogger(logging.RichTextLogger(c.loggerProvider)),
	)

	clientOpts := []strapi.Option{
		strapi.WithLogger(logging.StrapiLogger(c.loggerProvider)),
		strapi.WithRoutes(c.routes),
	}
	if c.httpClient != nil {
		clientOpts = append(clientOpts, strapi.WithHTTPClient(c.httpClient))
	}
	c.client = strapi.New(cfg.CMS, c.resolver, clientOpts...)

	c.insightsSvc = insights.NewService(c.client, c.store,
		insights.WithLogger(logging.InsightsLogger(c.loggerProvider)),
		insights.WithRenderer(c.renderer),
	)
	c.pageSvc = pages.NewService(c.client, c.store,
		pages.WithLogger(logging.PagesLogger(c.loggerProvider)),
		pages.WithPageSize(cfg.Site.PageSize),
		pages.WithInsights(c.insightsSvc),
		pages.WithClock(c.now),
	)
}

func (c *Container) configureSite() {
	c.view = views.New(c.routes, c.renderer, views.WithClock(c.now))

	siteOpts := []sitehttp.SiteOption{
		sitehttp.WithLogger(logging.HTTPLogger(c.loggerProvider)),
		sitehttp.WithRequestTimeout(sitehttp.RequestTimeoutFor(c.Config.CMS.Timeout)),
		sitehttp.WithFormTimings(c.Config.Forms.SubmitTimeout, c.Config.Forms.SuccessWindow),
	}
	if c.ledger != nil {
		siteOpts = append(siteOpts, sitehttp.WithRecorder(c.ledger))
	}
	c.site = sitehttp.NewSite(c.pageSvc, c.view, c.client, siteOpts...)
}

// LoggerProvider exposes the configured provider. It is nil when logging is
// disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Logger returns the module logger for name.
func (c *Container) Logger(name string) interfaces.Logger {
	return logging.ModuleLogger(c.loggerProvider, name)
}

// Client returns the CMS client.
func (c *Container) Client() *strapi.Client {
	return c.client
}

// PageService returns the page loaders.
func (c *Container) PageService() *pages.Service {
	return c.pageSvc
}

// InsightsService returns the latest insights feed.
func (c *Container) InsightsService() *insights.Service {
	return c.insightsSvc
}

// Routes returns the site route table.
func (c *Container) Routes() *routes.Manager {
	return c.routes
}

// Site returns the HTTP surface.
func (c *Container) Site() *sitehttp.Site {
	return c.site
}

// Ledger returns the submission ledger or ErrLedgerDisabled.
func (c *Container) Ledger() (ledger.Repository, error) {
	if c.ledger == nil {
		return nil, ErrLedgerDisabled
	}
	return c.ledger, nil
}

// Migrate prepares the ledger schema when the ledger is backed by a database.
func (c *Container) Migrate(ctx context.Context) error {
	if c.bunDB == nil {
		return nil
	}
	return ledger.Migrate(ctx, c.bunDB)
}

// Close releases the database opened by the container.
func (c *Container) Close() error {
	if c.bunDB == nil || !c.ownsDB {
		return nil
	}
	return c.bunDB.Close()
}
