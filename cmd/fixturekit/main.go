// Command fixturekit prepares and checks the stores that fixture sessions
// write to: it applies schema migrations and verifies that the configured
// database is reachable from a session.
//
//	fixturekit migrate up --config orders-it --dir testdata/migrations
//	fixturekit check --config-file config/fixtures.yml
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/fixturekit/bootstrap"
	"github.com/kbukum/fixturekit/config"
	"github.com/kbukum/fixturekit/database"
	"github.com/kbukum/fixturekit/observability"
	"github.com/kbukum/fixturekit/version"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options holds the persistent flags shared by every command.
type options struct {
	configName string
	configFile string
	envPrefix  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "fixturekit",
		Short: "Prepare and check fixture stores",
		Long: `fixturekit applies schema migrations to the database fixture sessions
write to and checks that the store is reachable with the configured driver.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configName, "config", "fixtures", "config name, resolved as testdata/<name>.yml or config/<name>.yml")
	flags.StringVar(&opts.configFile, "config-file", "", "explicit config file path")
	flags.StringVar(&opts.envPrefix, "env-prefix", config.DefaultEnvPrefix, "prefix of environment variable overrides")

	root.AddCommand(newVersionCmd(), newMigrateCmd(opts), newCheckCmd(opts))
	return root
}

// newApp loads the config and returns an app with telemetry and the
// database registered.
func (o *options) newApp(cmd *cobra.Command) (*bootstrap.App[*config.FixtureConfig], *database.Component, error) {
	loaderOpts := []config.LoaderOption{config.WithEnvPrefix(o.envPrefix)}
	if o.configFile != "" {
		loaderOpts = append(loaderOpts, config.WithConfigFile(o.configFile))
	}
	cfg, err := config.Load(o.configName, loaderOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	cfg.Database.Enabled = true

	app, err := bootstrap.NewApp(cfg,
		bootstrap.WithOutput(cmd.ErrOrStderr()),
		bootstrap.WithVersion(version.Get().Short()),
	)
	if err != nil {
		return nil, nil, err
	}
	build := version.Get()
	app.Logger.Debug("Configuration loaded", build.Fields())

	telemetry := observability.NewComponent(cfg.Telemetry, observability.Resource{
		ServiceName:    cfg.Name,
		ServiceVersion: build.Short(),
		Environment:    cfg.Environment,
	}, app.Logger)
	if err := app.RegisterComponent(telemetry); err != nil {
		return nil, nil, err
	}

	db := database.NewComponent(cfg.Database, app.Logger)
	if err := app.RegisterComponent(db); err != nil {
		return nil, nil, err
	}
	return app, db, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		},
	}
}
