package views

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dallionking/aistudio-primer/internal/playground"
	"github.com/Dallionking/aistudio-primer/internal/tui/models"
	"github.com/Dallionking/aistudio-primer/internal/tutorial"
)

// TutorialParams holds what the tutorial screen needs from the command layer.
type TutorialParams struct {
	Navigator *tutorial.Navigator
	Session   *playground.Session
	ModelName string
	Logger    *slog.Logger
}

// RunTutorial launches the interactive primer in the alternate screen with
// mouse support. Cancelling ctx aborts any outstanding completion.
func RunTutorial(ctx context.Context, params TutorialParams) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := models.NewTutorialModel(models.TutorialOptions{
		Navigator: params.Navigator,
		Session:   params.Session,
		ModelName: params.ModelName,
		Context:   ctx,
		Logger:    params.Logger,
	})
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tutorial: %w", err)
	}
	return nil
}
