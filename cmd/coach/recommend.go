package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"lifecoach/internal/model"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRecommendCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Get advice for confirmed problems",
		Long: `Read confirmed problems as JSON or YAML, either {"problems": [...]} or a bare list,
and print one piece of advice per problem.

Examples:
  coach recommend -f problems.yaml
  coach analyze ... -o json | coach recommend`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open problems file: %w", err)
				}
				defer f.Close()
				in = f
			}

			problems, err := readProblems(in)
			if err != nil {
				return err
			}

			c, err := newCoach()
			if err != nil {
				return err
			}

			s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			s.Suffix = fmt.Sprintf(" Preparing advice for %d problems...", len(problems))
			s.Start()

			recommendations, err := c.Recommend(cmd.Context(), problems)
			s.Stop()
			if err != nil {
				return fmt.Errorf("recommendation failed: %w", err)
			}

			return displayRecommendations(cmd.OutOrStdout(), problems, recommendations, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Problems file (JSON or YAML), stdin when empty or -")

	return cmd
}

// readProblems accepts the API's {"problems": [...]} envelope or a bare list.
// JSON input is parsed by the YAML decoder as well.
func readProblems(r io.Reader) ([]model.Problem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read problems: %w", err)
	}

	var wrapped struct {
		Problems []model.Problem `yaml:"problems"`
	}
	if err := yaml.Unmarshal(data, &wrapped); err == nil && wrapped.Problems != nil {
		return wrapped.Problems, nil
	}

	var list []model.Problem
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse problems: %w", err)
	}
	if list == nil {
		return nil, errors.New("parse problems: expected a problems list")
	}
	return list, nil
}
