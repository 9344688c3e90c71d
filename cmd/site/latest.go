package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newLatestCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Print the latest insights feed as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, err := a.module()
			if err != nil {
				return err
			}
			defer module.Close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(module.LatestInsights(cmd.Context()))
		},
	}
}
