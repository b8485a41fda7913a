package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lmartens/dayflow/internal/cli"
	"github.com/lmartens/dayflow/internal/config"
	"github.com/lmartens/dayflow/internal/docsource"
	"github.com/lmartens/dayflow/internal/service"
	"github.com/lmartens/dayflow/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("DAYFLOW_CONFIG")
	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("finding config path: %w", err)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dbPath := os.Getenv("DAYFLOW_DB")
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("finding database path: %w", err)
		}
	}

	database, err := store.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	snapshots := store.NewSnapshotStore(database)

	fetcher, err := docsource.NewLazyClient(cfg.Google, docsource.ObserverFromEnv())
	if err != nil {
		return fmt.Errorf("building docs client: %w", err)
	}

	app := &cli.App{
		Sync:       service.NewSyncService(fetcher, snapshots, cfg),
		Plan:       service.NewPlanService(snapshots, cfg),
		Config:     cfg,
		ConfigPath: configPath,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// No arguments on a terminal drops straight into the shell.
	if len(os.Args) == 1 && app.IsInteractive() {
		return cli.RunShell(app)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
