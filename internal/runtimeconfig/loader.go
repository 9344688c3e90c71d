package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces every SITE_* variable.
const EnvPrefix = "SITE"

// envAliases lists the conventional variable names accepted next to the
// SITE_* form for the settings operators set most often.
var envAliases = map[string][]string{
	"cms.base_url":    {"CMS_BASE_URL", "STRAPI_URL"},
	"cms.token":       {"CMS_API_TOKEN", "STRAPI_API_TOKEN"},
	"site.public_url": {"SITE_PUBLIC_URL", "PUBLIC_SITE_URL"},
	"server.addr":     {"SITE_SERVER_ADDR", "ADDR"},
	"ledger.dsn":      {"SITE_LEDGER_DSN", "DATABASE_URL"},
}

// Load resolves configuration from defaults, an optional config file and the
// environment, in increasing order of precedence. The result is not
// validated; callers run Validate once overrides are applied.
func Load(v *viper.Viper, file string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	defaults := DefaultConfig()
	setDefaults(v, defaults)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range envAliases {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		args := append([]string{key, prefixed}, names...)
		if err := v.BindEnv(args...); err != nil {
			return Config{}, fmt.Errorf("site config: bind %s: %w", key, err)
		}
	}

	if file = strings.TrimSpace(file); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("site config: read %s: %w", file, err)
			}
		}
	}

	cfg := defaults
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("site config: decode: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("cms.base_url", cfg.CMS.BaseURL)
	v.SetDefault("cms.token", cfg.CMS.Token)
	v.SetDefault("cms.timeout", cfg.CMS.Timeout)
	v.SetDefault("cms.uploads_path", cfg.CMS.UploadsPath)

	v.SetDefault("site.name", cfg.Site.Name)
	v.SetDefault("site.public_url", cfg.Site.PublicURL)
	v.SetDefault("site.page_size", cfg.Site.PageSize)

	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.read_timeout", cfg.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", cfg.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", cfg.Server.ShutdownTimeout)

	v.SetDefault("forms.submit_timeout", cfg.Forms.SubmitTimeout)
	v.SetDefault("forms.success_window", cfg.Forms.SuccessWindow)
	v.SetDefault("forms.reset_delay", cfg.Forms.ResetDelay)

	v.SetDefault("ledger.driver", cfg.Ledger.Driver)
	v.SetDefault("ledger.dsn", cfg.Ledger.DSN)
	v.SetDefault("ledger.cache_ttl", cfg.Ledger.CacheTTL)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)
	v.SetDefault("logging.focus", cfg.Logging.Focus)

	v.SetDefault("markdown.allow_raw_html", cfg.Markdown.AllowRawHTML)
	v.SetDefault("markdown.hard_wraps", cfg.Markdown.HardWraps)

	v.SetDefault("features.logger", cfg.Features.Logger)
	v.SetDefault("features.ledger", cfg.Features.Ledger)
	v.SetDefault("features.ledger_cache", cfg.Features.LedgerCache)
}
