package ui

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) askCmd() *cobra.Command {
	var (
		modelFlag string
		copyFlag  bool
		rawFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask one weather question and exit",
		Long: `Run a single weather turn without the interactive greeting.

Examples:
  brisa ask "weather in Tokyo"
  brisa ask will it rain in Berlin tomorrow
  brisa ask "40.7128, -74.0060" --raw
  brisa ask "weekend forecast for Madrid" --copy`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			asst, err := a.newAssistant(modelFlag)
			if err != nil {
				return err
			}

			input := strings.Join(args, " ")
			return a.runTurn(context.Background(), asst, input, turnOptions{
				raw:  rawFlag,
				copy: copyFlag,
			})
		},
	}

	cmd.Flags().StringVar(&modelFlag, "model", "", "LLM model to use (from config if not set)")
	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the forecast payload instead of a summary")
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the result to the clipboard")

	return cmd
}
