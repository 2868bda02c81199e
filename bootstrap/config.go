package bootstrap

import (
	"github.com/kbukum/fixturekit/config"
)

// Config is the interface constraint for application configuration types.
// Any struct that embeds config.ServiceConfig satisfies GetServiceConfig
// through the promoted method; config.FixtureConfig satisfies all of it.
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}
