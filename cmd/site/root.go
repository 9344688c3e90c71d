package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	site "github.com/goliatone/go-consulting-site"
	"github.com/goliatone/go-consulting-site/internal/di"
)

// app carries state shared by every subcommand.
type app struct {
	configFile string
	viper      *viper.Viper
	options    []di.Option
}

func newRootCommand(opts ...di.Option) *cobra.Command {
	a := &app{viper: viper.New(), options: opts}

	root := &cobra.Command{
		Use:           "site",
		Short:         "Consulting firm website backed by a headless CMS",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("cms-url", "", "CMS base url (overrides CMS_BASE_URL)")
	root.PersistentFlags().String("log-level", "", "log level")
	_ = a.viper.BindPFlag("cms.base_url", root.PersistentFlags().Lookup("cms-url"))
	_ = a.viper.BindPFlag("logging.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newServeCommand(a),
		newCheckCommand(a),
		newLatestCommand(a),
		newSubmissionsCommand(a),
	)
	return root
}

// module loads configuration and builds the site runtime.
func (a *app) module() (*site.Module, error) {
	cfg, err := site.LoadConfig(a.viper, a.configFile)
	if err != nil {
		return nil, err
	}
	return site.New(cfg, a.options...)
}
