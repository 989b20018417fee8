package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/alexanderramin/juju/internal/cli"
	"github.com/alexanderramin/juju/internal/config"
	"github.com/alexanderramin/juju/internal/db"
	"github.com/alexanderramin/juju/internal/logging"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{}

	// Setup runs after flag parsing so --config is honored.
	app.Setup = func(app *cli.App) error {
		cfg, err := config.Load(app.ConfigFile)
		if err != nil {
			return err
		}
		logger, err := logging.New(os.Stderr, cfg.Log)
		if err != nil {
			return err
		}
		database, err = db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		cli.Wire(app, database, cfg, logger)
		return nil
	}

	// Prompts only when both ends are a terminal.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	return cli.NewRootCmd(app).Execute()
}
