package cli

import (
	"errors"
	"fmt"

	"shelter-api/internal/adapters/storage/sqlstore"
	"shelter-api/internal/server"

	"github.com/spf13/cobra"
)

var errMemoryDriver = errors.New("this command needs a SQL driver (postgres|sqlite|mysql), got database.driver=memory")

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	run := func(fn func(cmd *cobra.Command, db *sqlstore.DB) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			db, err := a.openDB(cmd)
			if err != nil {
				return err
			}
			defer db.Close()
			return fn(cmd, db)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: run(func(cmd *cobra.Command, db *sqlstore.DB) error {
			return sqlstore.Migrate(cmd.Context(), db, a.log)
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: run(func(cmd *cobra.Command, db *sqlstore.DB) error {
			return sqlstore.Rollback(cmd.Context(), db, a.log)
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: run(func(cmd *cobra.Command, db *sqlstore.DB) error {
			return sqlstore.Status(cmd.Context(), db, a.log)
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: run(func(cmd *cobra.Command, db *sqlstore.DB) error {
			v, err := sqlstore.Version(cmd.Context(), db)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		}),
	})

	return cmd
}

func (a *app) openDB(cmd *cobra.Command) (*sqlstore.DB, error) {
	if a.cfg.Database.InMemory() {
		return nil, errMemoryDriver
	}
	return server.OpenDB(cmd.Context(), a.cfg, a.log)
}
