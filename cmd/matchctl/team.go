package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/matchcore/internal/domain/model"
)

type teamOptions struct {
	projectFile    string
	candidatesFile string
	size           int
	role           string
	exclude        []string
}

func newTeamCmd(root *rootOptions) *cobra.Command {
	opts := &teamOptions{}
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Generate a team from a project and candidate files",
		Long: "Reads a project JSON object and a candidate JSON array, ranks the pool " +
			"and prints the team with per-candidate breakdowns. With --role the " +
			"command prints replacement suggestions instead.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var project model.ProjectInput
			if err := readJSON(opts.projectFile, &project); err != nil {
				return fmt.Errorf("project: %w", err)
			}
			var candidates []model.ProfessionalProfile
			if err := readJSON(opts.candidatesFile, &candidates); err != nil {
				return fmt.Errorf("candidates: %w", err)
			}

			svc, _, err := root.startService(ctx)
			if err != nil {
				return err
			}
			defer svc.Stop()

			size := opts.size
			if !cmd.Flags().Changed("size") {
				size = svc.DefaultTeamSize()
			}

			if cmd.Flags().Changed("role") || len(opts.exclude) > 0 {
				suggestions, err := svc.Replacements(ctx, project, candidates, opts.role, opts.exclude, size)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), suggestions)
			}

			res, err := svc.GenerateTeam(ctx, project, candidates, size)
			if printErr := printJSON(cmd.OutOrStdout(), res); printErr != nil {
				return printErr
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.projectFile, "project", "p", "", "path to the project JSON")
	cmd.Flags().StringVarP(&opts.candidatesFile, "candidates", "c", "", "path to the candidates JSON array")
	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "team size (default from config)")
	cmd.Flags().StringVar(&opts.role, "role", "", "suggest replacements for this primary role")
	cmd.Flags().StringSliceVar(&opts.exclude, "exclude", nil, "candidate ids to leave out of suggestions")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("candidates")
	return cmd
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
