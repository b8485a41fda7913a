package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell dispatching the dayflow commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunShell(app)
		},
	}
}

// RunShell starts the interactive REPL. main also calls it directly
// when invoked on a terminal without arguments.
func RunShell(app *App) error {
	p := tea.NewProgram(newShellModel(app))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running shell: %w", err)
	}
	return nil
}
