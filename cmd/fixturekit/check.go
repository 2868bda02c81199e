package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/fixturekit/factory"
	"github.com/kbukum/fixturekit/sqlgen"
)

func newCheckCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that a fixture session can reach the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, db, err := o.newApp(cmd)
			if err != nil {
				return err
			}
			dialect, ok := sqlgen.ForDriver(app.Cfg.Database.Driver)
			if !ok {
				return fmt.Errorf("no statement dialect for driver %q", app.Cfg.Database.Driver)
			}

			session := factory.NewSession(db, dialect, factory.WithLogger(app.Logger))
			if err := app.RegisterComponent(factory.NewComponent(session)); err != nil {
				return err
			}
			return app.RunTask(cmd.Context(), app.ReadyCheck)
		},
	}
}
