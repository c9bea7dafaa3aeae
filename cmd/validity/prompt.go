package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-validity/pkg/terminal"
)

func newPromptCmd(root *rootOptions) *cobra.Command {
	var (
		format      string
		maxAttempts int
	)
	cmd := &cobra.Command{
		Use:   "prompt FILE",
		Short: "Fill a form interactively, validating every answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := parseOutputFormat(format)
			if err != nil {
				return err
			}
			s, err := root.open(cmd, args[0])
			if err != nil {
				return err
			}

			t := terminal.New(
				terminal.WithPromptDriver(terminal.NewSurveyDriver(cmd.ErrOrStderr())),
				terminal.WithOutputFormat(output),
				terminal.WithMaxAttempts(maxAttempts),
				terminal.WithTheme(terminal.Theme{ErrorPrefix: "✗ "}),
				terminal.WithLogger(s.logger),
			)
			payload, err := t.Run(cmd.Context(), s.doc, s.vctx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", string(terminal.OutputFormatJSON), "output format: json, form or pretty")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 5, "prompts per field before giving up (0 for unbounded)")
	return cmd
}

func parseOutputFormat(raw string) (terminal.OutputFormat, error) {
	switch f := terminal.OutputFormat(raw); f {
	case terminal.OutputFormatJSON, terminal.OutputFormatFormURLEncoded, terminal.OutputFormatPrettyText:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", raw)
}
