package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmartens/dayflow/internal/cli/formatter"
)

func newExplainCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <task-id>",
		Short: "Show a task's details and its place in the priority order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := app.Plan.Explain(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatExplanation(exp, time.Now()))
			return nil
		},
	}
}
