package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/matchcore/internal/probe"
)

func newProbeCmd(root *rootOptions) *cobra.Command {
	cfg := probe.Config{}
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Send random pools to a running server and verify every team",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			local, err := root.loadConfig(ctx)
			if err != nil {
				return err
			}
			cfg.BudgetCaps = local.BudgetCaps

			stats, err := probe.Run(ctx, cfg)
			fmt.Fprintf(cmd.OutOrStdout(), "rounds=%d teams=%d no_eligible=%d failed=%d violations=%d duration=%s\n",
				stats.Rounds, stats.Teams, stats.NoEligible, stats.Failed, len(stats.Violations), stats.Duration.Round(time.Millisecond))
			for _, v := range stats.Violations {
				fmt.Fprintln(cmd.OutOrStdout(), "  "+v)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&cfg.BaseURL, "url", "http://localhost:9080", "server base URL")
	cmd.Flags().IntVar(&cfg.Pool, "pool", 50, "candidates per request")
	cmd.Flags().IntVar(&cfg.Rounds, "rounds", 20, "number of requests")
	cmd.Flags().IntVar(&cfg.TeamSize, "size", 4, "requested team size")
	cmd.Flags().IntVar(&cfg.Workers, "workers", 4, "concurrent requests")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", 10*time.Second, "per-request timeout")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", 0, "pool generator seed (0 picks one from the clock)")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "log every round")
	return cmd
}
