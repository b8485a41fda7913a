package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/lmartens/dayflow/internal/cli/formatter"
	"github.com/lmartens/dayflow/internal/config"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialize the configuration",
	}
	cmd.AddCommand(newConfigInitCmd(app), newConfigShowCmd(app), newConfigValidateCmd(app))
	return cmd
}

func newConfigInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.ConfigPath
			if path == "" {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}

			exists, err := config.Exists(path)
			if err != nil {
				return err
			}
			if exists {
				overwrite := false
				confirm := huh.NewConfirm().
					Title(fmt.Sprintf("Overwrite %s?", path)).
					Description("The existing configuration will be replaced with the starter template.").
					Value(&overwrite)
				if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
					return err
				}
				if !overwrite {
					fmt.Println(formatter.Dim("left existing config untouched"))
					return nil
				}
			}

			if err := config.WriteStarter(path); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", formatter.Bold(path))
			return nil
		},
	}
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(formatter.FormatConfig(app.Config, app.ConfigPath))
			return nil
		},
	}
}

func newConfigValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Load(app.ConfigPath); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("✓ configuration is valid"))
			return nil
		},
	}
}
