package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lmartens/dayflow/internal/cli/formatter"
)

const defaultPlanDays = 3

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [days]",
		Short: "Show a multi-day schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := defaultPlanDays
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 1 {
					return fmt.Errorf("days must be a positive number, got %q", args[0])
				}
				days = parsed
			}

			schedules, err := app.Plan.PlanDays(context.Background(), days)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatMultiDay(schedules))
			return nil
		},
	}
}
