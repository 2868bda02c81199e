package config

import (
	"fmt"

	"github.com/kbukum/fixturekit/database"
	"github.com/kbukum/fixturekit/observability"
)

// FixtureConfig is the configuration of a fixture session: where the
// store lives, how the session logs and where its telemetry goes.
type FixtureConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Database  database.Config      `yaml:"database" mapstructure:"database"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults applies defaults to every section.
func (c *FixtureConfig) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

// Validate validates every section.
func (c *FixtureConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("config.database: %w", err)
	}
	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("config.telemetry: %w", err)
	}
	return nil
}

// Load reads a FixtureConfig for name, then applies defaults and validates it.
//
//	cfg, err := config.Load("orders-it")
//	// FIXTURE_DATABASE_DSN overrides database.dsn
func Load(name string, opts ...LoaderOption) (*FixtureConfig, error) {
	cfg := &FixtureConfig{}
	if err := LoadConfig(name, cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
