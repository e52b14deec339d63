package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dallionking/aistudio-primer/internal/gemini"
	"github.com/Dallionking/aistudio-primer/internal/playground"
	"github.com/Dallionking/aistudio-primer/internal/tui/components"
	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
)

var (
	askModel string
	askWidth int
	askRaw   bool
)

var errCompletionFailed = errors.New("completion failed")

var askCmd = &cobra.Command{
	Use:   "ask <prompt...>",
	Short: "Send one prompt to the playground model",
	Long: `Send a single prompt to the playground model and print the reply.

Each call is a fresh single turn; earlier prompts are not replayed.
The exit status is non-zero when the model call fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		model, err := selectModel(cfg.PlaygroundModel, askModel)
		if err != nil {
			return err
		}

		logger, closeLog, err := newLogger(cfg, false)
		if err != nil {
			return err
		}
		defer closeLog()

		client, err := gemini.NewClient(cmd.Context(), cfg.Gemini())
		if err != nil {
			return err
		}

		session := playground.NewSession(client,
			playground.WithModel(model),
			playground.WithMessages(cfg.Messages()),
			playground.WithLogger(logger),
		)

		reply, err := session.Submit(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if reply.IsError {
			fmt.Fprintln(cmd.ErrOrStderr(), styles.Red(reply.Text))
			return errCompletionFailed
		}
		if askRaw {
			fmt.Fprintln(out, reply.Text)
			return nil
		}
		fmt.Fprintln(out, styles.Dim(client.ModelName(model)))
		fmt.Fprintln(out, components.RenderMarkdown(reply.Text, askWidth))
		return nil
	},
}

func init() {
	askCmd.Flags().StringVarP(&askModel, "model", "m", "", "model: fast or advanced (default from config)")
	askCmd.Flags().IntVar(&askWidth, "width", 80, "word-wrap width")
	askCmd.Flags().BoolVar(&askRaw, "raw", false, "print the reply without Markdown rendering")
	rootCmd.AddCommand(askCmd)
}
