// Package config loads the configuration of a fixture session.
//
// LoadConfig reads, in increasing precedence, a YAML file, a .env file and
// environment variables carrying the FIXTURE_ prefix, and unmarshals the
// result with Viper. Underscores in variable names map to nested keys, so
// FIXTURE_DATABASE_DSN sets database.dsn.
//
// # Usage
//
//	cfg, err := config.Load("orders-it")
//	if err != nil {
//	    return err
//	}
//	db, err := database.Open(ctx, cfg.Database, logger.New(&cfg.Logging, cfg.Name))
//
// Without explicit paths, the loader looks for testdata/<name>.yml,
// config/<name>.yml and fixtures.yml in the working directory and its two
// parents, and for .env.<name>, .env.test and .env in the same places.
package config
