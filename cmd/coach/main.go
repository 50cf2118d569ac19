package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"lifecoach/internal/coach"
	"lifecoach/internal/config"

	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0" // Overwritten at build time

	outputFormat string
	verbose      bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "coach",
		Short: "AI life coach in the terminal",
		Long: `coach runs the same analysis and recommendation steps as the API server,
straight from the terminal. Credentials are read from the environment or a .env file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelInfo
			}
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log LLM calls to stderr")

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newRecommendCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "coach version %s\n", version)
		},
	}
}

func newCoach() (*coach.Coach, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client, err := cfg.NewLLMClient()
	if err != nil {
		return nil, err
	}

	return coach.New(client), nil
}
