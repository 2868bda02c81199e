// Package validation checks configuration structs against `validate` tags
// using go-playground/validator.
//
// Failures are reported as a single VALIDATION_ERROR AppError. The message
// names each field by its mapstructure key under a caller-chosen root, and
// the per-field breakdown is available through Fields.
//
//	type SuiteConfig struct {
//	    Name string `mapstructure:"name" validate:"required"`
//	    Mode string `mapstructure:"mode" validate:"oneof=fast full"`
//	}
//	err := validation.Struct(&cfg, "config")
//	// VALIDATION_ERROR: config.name is required; config.mode must be one of: fast full
package validation
