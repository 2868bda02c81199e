// Package bootstrap runs finite fixture tasks, such as applying migrations
// or checking that a fixture store is reachable, with a uniform lifecycle.
//
// An App validates its config, builds a logger from it, starts the
// registered components, runs the task and stops everything again in
// reverse order. A Summary of the started components and their health is
// printed once startup completes.
//
//	app, err := bootstrap.NewApp(cfg)
//	app.RegisterComponent(database.NewComponent(cfg.Database, app.Logger))
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    return migrate(ctx)
//	})
package bootstrap
