package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmartens/dayflow/internal/cli/formatter"
)

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Fetch task documents and refresh the local snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Sync.Sync(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSyncResult(res))
			return nil
		},
	}
}
