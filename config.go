package site

import (
	"github.com/spf13/viper"

	"github.com/goliatone/go-consulting-site/internal/runtimeconfig"
)

var (
	ErrCMSBaseURLRequired   = runtimeconfig.ErrCMSBaseURLRequired
	ErrCMSBaseURLInvalid    = runtimeconfig.ErrCMSBaseURLInvalid
	ErrCMSTokenRequired     = runtimeconfig.ErrCMSTokenRequired
	ErrCMSTimeoutInvalid    = runtimeconfig.ErrCMSTimeoutInvalid
	ErrPublicURLInvalid     = runtimeconfig.ErrPublicURLInvalid
	ErrPageSizeInvalid      = runtimeconfig.ErrPageSizeInvalid
	ErrServerAddrRequired   = runtimeconfig.ErrServerAddrRequired
	ErrLedgerDSNRequired    = runtimeconfig.ErrLedgerDSNRequired
	ErrLedgerDriverUnknown  = runtimeconfig.ErrLedgerDriverUnknown
	ErrLoggingLevelInvalid  = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	CMSConfig      = runtimeconfig.CMSConfig
	SiteConfig     = runtimeconfig.SiteConfig
	ServerConfig   = runtimeconfig.ServerConfig
	FormsConfig    = runtimeconfig.FormsConfig
	LedgerConfig   = runtimeconfig.LedgerConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	Features       = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads defaults, the optional file and the environment. A nil
// viper instance uses a fresh one.
func LoadConfig(v *viper.Viper, file string) (Config, error) {
	return runtimeconfig.Load(v, file)
}
