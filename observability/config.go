package observability

import (
	"fmt"
	"time"

	"github.com/kbukum/fixturekit/validation"
)

// Config configures OTLP export of fixture telemetry.
type Config struct {
	// Enabled controls whether the telemetry component installs providers.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Endpoint is the OTLP HTTP endpoint host:port.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"required,hostname_port"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`

	// SampleRate is the fraction of statement spans kept, from 0 to 1.
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`

	// ExportInterval is how often metrics are pushed (e.g. "15s").
	ExportInterval string `yaml:"export_interval" mapstructure:"export_interval"`
}

// ApplyDefaults sets defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
	if c.ExportInterval == "" {
		c.ExportInterval = "15s"
	}
}

// Validate checks the config when telemetry is enabled.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if err := validation.Struct(c, ""); err != nil {
		return err
	}
	if d, err := time.ParseDuration(c.ExportInterval); err != nil || d <= 0 {
		return fmt.Errorf("invalid export_interval %q", c.ExportInterval)
	}
	return nil
}

func (c *Config) interval() time.Duration {
	d, err := time.ParseDuration(c.ExportInterval)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}
