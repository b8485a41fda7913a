package cli

import (
	"github.com/spf13/cobra"

	"github.com/lmartens/dayflow/internal/config"
	"github.com/lmartens/dayflow/internal/service"
)

// App holds the services and configuration used by CLI commands.
type App struct {
	Sync service.SyncService
	Plan service.PlanService

	Config     *config.Config
	ConfigPath string

	// IsInteractive reports whether stdin is a terminal; main uses it to
	// auto-enter the shell when invoked without arguments.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "dayflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dayflow",
		Short: "Deadline-aware day planner fed by Google Docs task lists",
		Long: `dayflow syncs task lists from Google Docs, orders them by deadline
pressure, and lays them out around your sleep, breaks and meetings.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newSyncCmd(app),
		newTodayCmd(app),
		newPlanCmd(app),
		newExplainCmd(app),
		newConfigCmd(app),
		newShellCmd(app),
	)

	return root
}
