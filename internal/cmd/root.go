package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dallionking/aistudio-primer/internal/config"
	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
)

var (
	cfgFile string
	envFile string
	verbose bool
	noColor bool

	// configErr is a config file read failure, reported by loadConfig.
	configErr error
	// dotenvErr is a .env parse failure. A missing .env is not an error.
	dotenvErr error
)

var rootCmd = &cobra.Command{
	Use:   "aistudio-primer",
	Short: "Interactive Chinese primer for Google AI Studio",
	Long: `AI Studio 中文入门教程

A terminal walkthrough of Google AI Studio: what it is, how to get an
API key, how to write a good prompt, and a live playground backed by
the Gemini API.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(styles.Accent(styles.Logo) + "  " + styles.Value.Render("中文入门教程"))
		fmt.Println("Run 'aistudio-primer tutorial' to start, or '--help' for all commands")
	},
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.{json,yaml} or ~/.config/aistudio-primer/config.*)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
}

func initConfig() {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Variables already in the environment win over .env.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		dotenvErr = fmt.Errorf("loading %s: %w", envFile, err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "aistudio-primer"))
		}
	}
	config.SetDefaults(viper.GetViper())
	configErr = config.ReadFile(viper.GetViper())
}

// loadConfig returns the effective configuration.
func loadConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}
	if dotenvErr != nil {
		return nil, dotenvErr
	}
	return config.Load(viper.GetViper())
}

// newLogger builds the slog logger for a command. Plain commands log to
// stderr. The TUI owns the terminal, so it logs to log.file or nowhere.
// The returned func closes the log file, if any.
func newLogger(cfg *config.Config, tui bool) (*slog.Logger, func(), error) {
	level := parseLevel(cfg.Log.Level)
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	if tui {
		w = io.Discard
		if cfg.Log.File != "" {
			f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, nil, fmt.Errorf("opening log file: %w", err)
			}
			w = f
			closer = func() { _ = f.Close() }
		}
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h), closer, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
