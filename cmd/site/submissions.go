package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	site "github.com/goliatone/go-consulting-site"
	"github.com/goliatone/go-consulting-site/internal/format"
	"github.com/goliatone/go-consulting-site/internal/ledger"
)

func newSubmissionsCommand(a *app) *cobra.Command {
	var filter site.SubmissionFilter
	var status string

	cmd := &cobra.Command{
		Use:   "submissions",
		Short: "List form submissions recorded in the local ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, err := a.module()
			if err != nil {
				return err
			}
			defer module.Close()

			if err := module.Migrate(cmd.Context()); err != nil {
				return err
			}
			filter.Status = ledger.Status(status)
			entries, total, err := module.Submissions(cmd.Context(), filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			now := time.Now()
			fmt.Fprintf(out, "%s %s %s %s\n",
				column("TYPE", 14), column("EMAIL", 32), column("STATUS", 10), "SUBMITTED")
			for _, entry := range entries {
				line := fmt.Sprintf("%s %s %s %s",
					column(entry.FormType, 14),
					column(entry.ClientEmail, 32),
					column(string(entry.Status), 10),
					humanize.RelTime(entry.SubmittedAt, now, "ago", "from now"),
				)
				if entry.Error != "" {
					line += "  " + format.Truncate(entry.Error, 60)
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "%d of %d submissions\n", len(entries), total)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.FormType, "type", "", "only this form type (Contact, Career, Newsletter, Consultation)")
	cmd.Flags().StringVar(&status, "status", "", "only delivered or failed")
	cmd.Flags().IntVar(&filter.Limit, "limit", 20, "maximum rows")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "rows to skip")
	return cmd
}

func column(value string, width int) string {
	return runewidth.FillRight(format.Truncate(value, width), width)
}
