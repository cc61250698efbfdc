package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/costbook/internal/app"
	"github.com/MrJamesThe3rd/costbook/internal/config"
	"github.com/MrJamesThe3rd/costbook/internal/database"
	"github.com/MrJamesThe3rd/costbook/internal/logger"
)

// env is shared by subcommands; it is populated lazily by open.
type env struct {
	cfg *config.Config
	db  *sql.DB
	app *app.App
}

func (e *env) open(ctx context.Context) error {
	if e.app != nil {
		return nil
	}

	db, err := database.New(e.cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	e.db = db
	e.app = app.New(ctx, e.cfg, db)

	return nil
}

func (e *env) close() {
	if e.db != nil {
		_ = e.db.Close()
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "costctl",
		Short:         "Costbook administration: migrations, bulk imports, purchase orders and Xero sync",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			e.cfg = cfg

			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				cfg.App.Env = "dev"
			}

			slog.SetDefault(logger.New(cfg.App.Env))

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			e.close()
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level in text format")

	root.AddCommand(
		newMigrateCmd(e),
		newImportCmd(e),
		newRenderPOCmd(e),
		newSyncContactsCmd(e),
		newPushBillCmd(e),
		newExportCmd(e),
	)

	return root
}
