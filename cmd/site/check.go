package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the CMS answers an authenticated read",
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, err := a.module()
			if err != nil {
				return err
			}
			defer module.Close()

			if err := module.Check(cmd.Context()); err != nil {
				return fmt.Errorf("cms check failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "cms ok")
			return nil
		},
	}
}
