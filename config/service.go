package config

import (
	"fmt"

	"github.com/kbukum/fixturekit/logger"
	"github.com/kbukum/fixturekit/validation"
)

// ServiceConfig contains the fields every fixture-driven test suite shares.
// Projects extend it by embedding it in their own config structs.
//
//	type SuiteConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Seed int `yaml:"seed" mapstructure:"seed"`
//	}
type ServiceConfig struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=local ci test"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetServiceConfig returns the base ServiceConfig. When embedded, the method
// is promoted to the embedding struct.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults applies default values to the base configuration.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "fixtures"
	}
	if c.Environment == "" {
		c.Environment = "local"
	}
	if c.Environment == "local" && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the base configuration fields.
func (c *ServiceConfig) Validate() error {
	if err := validation.Struct(c, "config"); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
