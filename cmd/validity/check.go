package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-validity/pkg/report"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var (
		sets   []string
		format string
	)
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Fill a form, submit it and print a validation report",
		Long: `check loads the form in FILE, applies --set values and runs submit
validation. The report goes to stdout; the exit status is 1 when any field
is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.open(cmd, args[0])
			if err != nil {
				return err
			}
			if err := s.fill(sets); err != nil {
				return err
			}
			summary := s.submit()

			engine, err := report.New()
			if err != nil {
				return err
			}
			if err := engine.Render(cmd.OutOrStdout(), format, summary); err != nil {
				return err
			}
			return invalidExit(summary)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "control value as name=value (repeatable)")
	cmd.Flags().StringVar(&format, "format", report.FormatText, "report format: text or html")
	return cmd
}
