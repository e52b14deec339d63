package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Dallionking/aistudio-primer/internal/tui/components"
	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
	"github.com/Dallionking/aistudio-primer/internal/tutorial"
)

var stepsWidth int

// --- steps (parent) ---

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the tutorial steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		nav, err := tutorial.NewNavigator(tutorial.DefaultSteps())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, styles.Title.Render("Tutorial Steps"))
		fmt.Fprintln(out)

		numStyle := lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true).Width(4)
		idStyle := lipgloss.NewStyle().Foreground(styles.TextMuted).Width(12)
		for i, step := range nav.Steps() {
			fmt.Fprintf(out, "  %s%s%s %s\n",
				numStyle.Render(fmt.Sprintf("%d.", i+1)),
				idStyle.Render(step.ID),
				step.Icon.Glyph(),
				styles.Value.Render(step.Title),
			)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, styles.Dim("  aistudio-primer steps show <n|id>  to read a step"))
		return nil
	},
}

// --- steps show ---

var stepsShowCmd = &cobra.Command{
	Use:   "show <n|id>",
	Short: "Render one step in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nav, err := tutorial.NewNavigator(tutorial.DefaultSteps())
		if err != nil {
			return err
		}
		if err := selectStep(nav, args[0]); err != nil {
			return err
		}

		step := nav.Current()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, components.ProgressStep{Total: nav.Len(), Current: nav.Index()}.Render())
		fmt.Fprintln(out, components.RenderMarkdown(step.Content, stepsWidth))
		if nav.HasNext() {
			fmt.Fprintln(out, styles.Dim(fmt.Sprintf("  next: aistudio-primer steps show %d", nav.Index()+2)))
		}
		return nil
	},
}

func init() {
	stepsShowCmd.Flags().IntVar(&stepsWidth, "width", 80, "word-wrap width")
	stepsCmd.AddCommand(stepsShowCmd)
	rootCmd.AddCommand(stepsCmd)
}
