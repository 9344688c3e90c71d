package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

var ErrCMSBaseURLRequired = errors.New("site config: cms base url is required")
var ErrCMSBaseURLInvalid = errors.New("site config: cms base url must be an absolute http(s) url")
var ErrCMSTokenRequired = errors.New("site config: cms api token is required")
var ErrCMSTimeoutInvalid = errors.New("site config: cms timeout must be positive")
var ErrPublicURLInvalid = errors.New("site config: public site url must be an absolute http(s) url")
var ErrPageSizeInvalid = errors.New("site config: page size must be positive")
var ErrServerAddrRequired = errors.New("site config: server address is required")

// ErrLedgerDSNRequired guards the ledger feature against a missing database.
var ErrLedgerDSNRequired = errors.New("site config: ledger dsn is required when the ledger feature is enabled")
var ErrLedgerDriverUnknown = errors.New("site config: ledger driver is invalid")
var ErrLoggingLevelInvalid = errors.New("site config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("site config: logging format is invalid")

// DefaultCMSTimeout bounds every CMS request.
const DefaultCMSTimeout = 10 * time.Second

// Config aggregates everything the site needs at runtime. The CMS location
// and token have no defaults; they must come from the environment or a
// config file.
type Config struct {
	CMS      CMSConfig      `mapstructure:"cms"`
	Site     SiteConfig     `mapstructure:"site"`
	Server   ServerConfig   `mapstructure:"server"`
	Forms    FormsConfig    `mapstructure:"forms"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Markdown MarkdownConfig `mapstructure:"markdown"`
	Features Features       `mapstructure:"features"`
}

// CMSConfig locates the Strapi instance.
type CMSConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Token       string        `mapstructure:"token"`
	Timeout     time.Duration `mapstructure:"timeout"`
	UploadsPath string        `mapstructure:"uploads_path"`
}

// SiteConfig holds public facing settings.
type SiteConfig struct {
	Name      string `mapstructure:"name"`
	PublicURL string `mapstructure:"public_url"`
	PageSize  int    `mapstructure:"page_size"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// FormsConfig tunes submission behaviour.
type FormsConfig struct {
	SubmitTimeout time.Duration `mapstructure:"submit_timeout"`
	SuccessWindow time.Duration `mapstructure:"success_window"`
	ResetDelay    time.Duration `mapstructure:"reset_delay"`
}

// LedgerConfig configures the local submission ledger.
type LedgerConfig struct {
	Driver   string        `mapstructure:"driver"`
	DSN      string        `mapstructure:"dsn"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// LoggingConfig feeds the go-logger provider.
type LoggingConfig struct {
	Level     string   `mapstructure:"level"`
	Format    string   `mapstructure:"format"`
	AddSource bool     `mapstructure:"add_source"`
	Focus     []string `mapstructure:"focus"`
}

// MarkdownConfig toggles renderer behaviour.
type MarkdownConfig struct {
	AllowRawHTML bool `mapstructure:"allow_raw_html"`
	HardWraps    bool `mapstructure:"hard_wraps"`
}

// Features toggles optional subsystems.
type Features struct {
	Logger      bool `mapstructure:"logger"`
	Ledger      bool `mapstructure:"ledger"`
	LedgerCache bool `mapstructure:"ledger_cache"`
}

// DefaultConfig returns defaults for everything except the CMS location and
// credentials.
func DefaultConfig() Config {
	return Config{
		CMS: CMSConfig{
			Timeout:     DefaultCMSTimeout,
			UploadsPath: "/uploads",
		},
		Site: SiteConfig{
			Name:     "Consulting",
			PageSize: 6,
		},
		Server: ServerConfig{
			Addr:            ":3000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Forms: FormsConfig{
			SubmitTimeout: DefaultCMSTimeout,
			SuccessWindow: 5 * time.Second,
		},
		Ledger: LedgerConfig{
			Driver:   "sqlite",
			CacheTTL: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Markdown: MarkdownConfig{
			HardWraps: true,
		},
		Features: Features{
			Logger: true,
		},
	}
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	base := strings.TrimSpace(cfg.CMS.BaseURL)
	if base == "" {
		return ErrCMSBaseURLRequired
	}
	if !isAbsoluteHTTP(base) {
		return fmt.Errorf("%w: %s", ErrCMSBaseURLInvalid, base)
	}
	if strings.TrimSpace(cfg.CMS.Token) == "" {
		return ErrCMSTokenRequired
	}
	if cfg.CMS.Timeout <= 0 {
		return ErrCMSTimeoutInvalid
	}
	if public := strings.TrimSpace(cfg.Site.PublicURL); public != "" && !isAbsoluteHTTP(public) {
		return fmt.Errorf("%w: %s", ErrPublicURLInvalid, public)
	}
	if cfg.Site.PageSize <= 0 {
		return ErrPageSizeInvalid
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return ErrServerAddrRequired
	}
	if cfg.Features.Ledger {
		driver := NormalizeDriver(cfg.Ledger.Driver)
		if driver != "sqlite" && driver != "postgres" {
			return fmt.Errorf("%w: %s", ErrLedgerDriverUnknown, cfg.Ledger.Driver)
		}
		if strings.TrimSpace(cfg.Ledger.DSN) == "" {
			return ErrLedgerDSNRequired
		}
	}
	if cfg.Features.Logger {
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// NormalizeDriver maps driver aliases to "sqlite" or "postgres".
func NormalizeDriver(driver string) string {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite", "sqlite3":
		return "sqlite"
	case "postgres", "postgresql", "pg":
		return "postgres"
	default:
		return strings.ToLower(strings.TrimSpace(driver))
	}
}

func isAbsoluteHTTP(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
