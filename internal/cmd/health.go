package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dallionking/aistudio-primer/internal/gemini"
	"github.com/Dallionking/aistudio-primer/internal/health"
	"github.com/Dallionking/aistudio-primer/internal/playground"
	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
)

var (
	healthPing     bool
	healthCategory string
)

var errUnhealthy = errors.New("health check failed")

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check configuration and credentials",
	Long: `Run diagnostic checks before using the playground.

Checks are grouped into categories:
  config       - config file, value validation
  credentials  - .env file, API key or Vertex AI project
  runtime      - one live completion (only with --ping)

Use --category to run only a specific group.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		var completer playground.Completer
		if healthPing {
			client, err := gemini.NewClient(ctx, cfg.Gemini())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), styles.Amber(err.Error()))
			} else {
				completer = client
			}
		}

		checker := health.NewChecker(health.Options{
			Config:     cfg,
			ConfigFile: viper.ConfigFileUsed(),
			DotEnvPath: envFile,
			Completer:  completer,
			Ping:       healthPing,
		})

		var report *health.Report
		if healthCategory != "" {
			report, err = checker.RunCategory(ctx, healthCategory)
			if err != nil {
				return err
			}
		} else {
			report = checker.RunAll(ctx)
		}

		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))
		if !report.Healthy {
			return errUnhealthy
		}
		return nil
	},
}

func init() {
	healthCmd.Flags().BoolVar(&healthPing, "ping", false, "send one live completion to the configured model")
	healthCmd.Flags().StringVar(&healthCategory, "category", "", "run checks in a category: config, credentials, or runtime")
	rootCmd.AddCommand(healthCmd)
}
