package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newSignalsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "signals TEXT...",
		Short: "Print the capability, role and industry tags found in text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, _, err := root.startService(ctx)
			if err != nil {
				return err
			}
			defer svc.Stop()

			set, err := svc.Signals(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), set)
		},
	}
}
