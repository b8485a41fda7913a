package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmartens/dayflow/internal/cli/formatter"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the schedule for the rest of today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.Plan.PlanToday(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDaySchedule(*day))
			return nil
		},
	}
}
