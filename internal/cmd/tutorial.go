package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Dallionking/aistudio-primer/internal/gemini"
	"github.com/Dallionking/aistudio-primer/internal/playground"
	"github.com/Dallionking/aistudio-primer/internal/tui/views"
	"github.com/Dallionking/aistudio-primer/internal/tutorial"
)

var (
	tutorialStep  string
	tutorialModel string
)

var tutorialCmd = &cobra.Command{
	Use:   "tutorial",
	Short: "Launch the interactive tutorial",
	Long: `Walk through the four-step AI Studio primer in a full-screen
terminal UI. The last step is a live playground backed by the Gemini API.

Use --step to start at a specific step, by number (1-4) or id
(intro, apikey, interface, demo).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		nav, err := tutorial.NewNavigator(tutorial.DefaultSteps())
		if err != nil {
			return err
		}
		if tutorialStep != "" {
			if err := selectStep(nav, tutorialStep); err != nil {
				return err
			}
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		model, err := selectModel(cfg.PlaygroundModel, tutorialModel)
		if err != nil {
			return err
		}

		logger, closeLog, err := newLogger(cfg, true)
		if err != nil {
			return err
		}
		defer closeLog()

		// A missing key must not block reading the tutorial; the playground
		// reports the failure in place instead.
		var completer playground.Completer
		client, err := gemini.NewClient(cmd.Context(), cfg.Gemini())
		if err != nil {
			logger.Warn("tutorial: playground disabled", "error", err)
		} else {
			completer = client
		}

		session := playground.NewSession(completer,
			playground.WithModel(model),
			playground.WithMessages(cfg.Messages()),
			playground.WithLogger(logger),
		)
		logger.Info("tutorial: starting", "step", nav.Current().ID, "session", session.ID())

		return views.RunTutorial(cmd.Context(), views.TutorialParams{
			Navigator: nav,
			Session:   session,
			ModelName: modelID(cfg.Models.Fast, cfg.Models.Advanced, model),
			Logger:    logger,
		})
	},
}

func init() {
	tutorialCmd.Flags().StringVar(&tutorialStep, "step", "", "start at a step number (1-4) or id")
	tutorialCmd.Flags().StringVar(&tutorialModel, "model", "", "playground model: fast or advanced (default from config)")
	rootCmd.AddCommand(tutorialCmd)
}

// selectStep moves nav to the step named by arg, a 1-based number or an id.
func selectStep(nav *tutorial.Navigator, arg string) error {
	if n, err := strconv.Atoi(arg); err == nil {
		if err := nav.SelectIndex(n - 1); err != nil {
			return fmt.Errorf("step must be between 1 and %d (got %d)", nav.Len(), n)
		}
		return nil
	}
	if err := nav.SelectStep(arg); err != nil {
		return fmt.Errorf("selecting step %q: %w", arg, err)
	}
	return nil
}

// selectModel returns the model named by override, or the configured one
// when override is empty.
func selectModel(configured func() (playground.Model, error), override string) (playground.Model, error) {
	if override != "" {
		return playground.ParseModel(override)
	}
	return configured()
}

func modelID(fast, advanced string, m playground.Model) string {
	if m == playground.ModelAdvanced {
		return advanced
	}
	return fast
}
