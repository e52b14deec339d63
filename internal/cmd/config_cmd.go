package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dallionking/aistudio-primer/internal/config"
	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Display the configuration after merging defaults, the config file,
.env and the environment. The API key is masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		row := func(label, value string) {
			fmt.Fprintf(out, "%s %s\n", styles.Label.Width(12).Render(label), styles.Value.Render(value))
		}

		fmt.Fprintln(out, styles.Title.Render("Configuration"))
		fmt.Fprintln(out)

		file := viper.ConfigFileUsed()
		if file == "" {
			file = "(none, using defaults)"
		}
		row("FILE", file)

		key := cfg.MaskedAPIKey()
		if key == "" {
			key = "(not set)"
		}
		row("API KEY", key)

		if cfg.UsesVertex() {
			loc := cfg.Gemini().Location
			if loc == "" {
				loc = "default"
			}
			row("BACKEND", fmt.Sprintf("Vertex AI (%s, %s)", cfg.Vertex.Project, loc))
		} else {
			row("BACKEND", "Gemini API")
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, styles.Subtitle.Render("Models"))
		row("  FAST", cfg.Models.Fast)
		row("  ADVANCED", cfg.Models.Advanced)
		row("  PLAYGROUND", cfg.Playground.Model)
		fmt.Fprintln(out)

		fmt.Fprintln(out, styles.Subtitle.Render("Logging"))
		row("  LEVEL", cfg.Log.Level)
		logFile := cfg.Log.File
		if logFile == "" {
			logFile = "(tui logs discarded)"
		}
		row("  FILE", logFile)

		if errs := config.Validate(cfg); len(errs) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, styles.Divider(50))
			for _, ve := range errs {
				fmt.Fprintln(out, "  "+styles.Amber("!")+" "+ve.Error())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
