package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kbukum/fixturekit/database/migration"
)

type migrateFunc func(db *sql.DB, fsys fs.FS, driver migration.DriverFunc) error

func newMigrateCmd(o *options) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "migrations", "directory of VERSION_name.up.sql and .down.sql files")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.runMigration(cmd, dir, func(db *sql.DB, fsys fs.FS, driver migration.DriverFunc) error {
					return migration.Up(db, fsys, ".", driver)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every applied migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.runMigration(cmd, dir, func(db *sql.DB, fsys fs.FS, driver migration.DriverFunc) error {
					return migration.Down(db, fsys, ".", driver)
				})
			},
		},
		&cobra.Command{
			Use:   "steps N",
			Short: "Apply N migrations, or roll back when N is negative",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid step count %q: %w", args[0], err)
				}
				return o.runMigration(cmd, dir, func(db *sql.DB, fsys fs.FS, driver migration.DriverFunc) error {
					return migration.Steps(db, fsys, ".", n, driver)
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied migration version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.runMigration(cmd, dir, func(db *sql.DB, fsys fs.FS, driver migration.DriverFunc) error {
					v, dirty, err := migration.Version(db, fsys, ".", driver)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", v, dirty)
					return nil
				})
			},
		},
	)
	return cmd
}

// runMigration starts the database and runs fn against the files in dir.
func (o *options) runMigration(cmd *cobra.Command, dir string, fn migrateFunc) error {
	app, db, err := o.newApp(cmd)
	if err != nil {
		return err
	}
	driver, err := migration.DriverFor(app.Cfg.Database.Driver)
	if err != nil {
		return err
	}

	return app.RunTask(cmd.Context(), func(ctx context.Context) error {
		sqlDB, err := db.DB().SQLDB()
		if err != nil {
			return err
		}
		return fn(sqlDB, os.DirFS(dir), driver)
	})
}
