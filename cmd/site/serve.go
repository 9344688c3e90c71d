package main

import (
	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the website until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, err := a.module()
			if err != nil {
				return err
			}
			defer module.Close()

			if err := module.Migrate(cmd.Context()); err != nil {
				return err
			}
			return module.Serve(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "listen address (overrides server.addr)")
	_ = a.viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	return cmd
}
