package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-validity/pkg/htmlform"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Submit a form and print it with error state applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.open(cmd, args[0])
			if err != nil {
				return err
			}
			if err := s.fill(sets); err != nil {
				return err
			}
			summary := s.submit()
			if err := htmlform.Render(cmd.OutOrStdout(), s.doc); err != nil {
				return err
			}
			return invalidExit(summary)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "control value as name=value (repeatable)")
	return cmd
}
