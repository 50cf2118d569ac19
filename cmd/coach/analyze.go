package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	var feeling, troubles, changes string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Identify your three main life problems",
		Long: `Describe how you feel, what troubles you and what you want to change.
The coach answers with exactly three problems.

Examples:
  coach analyze --feeling "unavený" --troubles "práce" --changes "více klidu"
  coach analyze --feeling "stressed" --troubles "work" --changes "balance" -o yaml > problems.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCoach()
			if err != nil {
				return err
			}

			s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			s.Suffix = " Analyzing your situation..."
			s.Start()

			problems, err := c.Analyze(cmd.Context(), feeling, troubles, changes)
			s.Stop()
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			return displayProblems(cmd.OutOrStdout(), problems, outputFormat)
		},
	}

	cmd.Flags().StringVar(&feeling, "feeling", "", "How you currently feel")
	cmd.Flags().StringVar(&troubles, "troubles", "", "What troubles you")
	cmd.Flags().StringVar(&changes, "changes", "", "What you want to change")
	cmd.MarkFlagRequired("feeling")
	cmd.MarkFlagRequired("troubles")
	cmd.MarkFlagRequired("changes")

	return cmd
}
