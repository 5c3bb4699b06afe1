package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	service "github.com/okian/matchcore/internal/app"
	"github.com/okian/matchcore/internal/config"
	"github.com/okian/matchcore/pkg/logger"
)

const app = "matchctl"

type rootOptions struct {
	cfgFile string
	debug   bool
	json    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          app,
		Short:        "matchctl assembles project teams from candidate pools",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			format := logger.FormatText
			if opts.json {
				format = logger.FormatJSON
			}
			if err := logger.Init(logger.WithFormat(format), logger.WithWriter(cmd.ErrOrStderr())); err != nil {
				return err
			}
			if opts.debug {
				return logger.SetLevelString("debug")
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "a YAML config file (default is $"+config.EnvConfig+")")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")
	cmd.PersistentFlags().BoolVarP(&opts.json, "json", "j", false, "json format for logging")

	cmd.AddCommand(
		newTeamCmd(opts),
		newSignalsCmd(opts),
		newProbeCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// loadConfig reads configuration, preferring the --config flag over the
// environment.
func (o *rootOptions) loadConfig(ctx context.Context) (*config.Config, error) {
	if o.cfgFile != "" {
		if err := os.Setenv(config.EnvConfig, o.cfgFile); err != nil {
			return nil, err
		}
	}
	return config.Load(ctx)
}

// startService builds and starts an in-process matching service.
func (o *rootOptions) startService(ctx context.Context) (*service.Service, *config.Config, error) {
	cfg, err := o.loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := service.New(
		service.WithLogger(logger.Get().Named("service")),
		service.WithWorkerCount(cfg.WorkerCount),
		service.WithParallelThreshold(cfg.ParallelThreshold),
		service.WithTeamSizes(cfg.DefaultTeamSize, cfg.MaxTeamSize),
		service.WithMaxCandidates(cfg.MaxCandidates),
		service.WithTables(cfg.MatchingTables()),
	)
	if err := svc.Start(ctx); err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
