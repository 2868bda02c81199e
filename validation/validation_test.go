package validation

import (
	"strings"
	"testing"

	apperrors "github.com/kbukum/fixturekit/errors"
)

type poolConfig struct {
	Size int `mapstructure:"size" validate:"min=1,max=8"`
}

type suiteConfig struct {
	Name      string     `mapstructure:"name" validate:"required"`
	Mode      string     `mapstructure:"mode" validate:"oneof=fast full"`
	SessionID string     `mapstructure:"session_id" validate:"omitempty,uuid"`
	RetryMax  int        `validate:"max=5"`
	Pool      poolConfig `mapstructure:"pool"`
}

func validSuite() suiteConfig {
	return suiteConfig{Name: "orders", Mode: "fast", Pool: poolConfig{Size: 2}}
}

func TestStructValid(t *testing.T) {
	cfg := validSuite()
	if err := Struct(&cfg, "config"); err != nil {
		t.Fatalf("Struct() failed: %v", err)
	}
}

func TestStructMessages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*suiteConfig)
		want   string
	}{
		{"required", func(c *suiteConfig) { c.Name = "" }, "config.name is required"},
		{"oneof", func(c *suiteConfig) { c.Mode = "slow" }, "config.mode must be one of: fast full"},
		{"uuid", func(c *suiteConfig) { c.SessionID = "nope" }, "config.session_id must be a valid UUID"},
		{"nested min", func(c *suiteConfig) { c.Pool.Size = 0 }, "config.pool.size must be at least 1"},
		{"nested max", func(c *suiteConfig) { c.Pool.Size = 9 }, "config.pool.size must be at most 8"},
		{"snake case fallback", func(c *suiteConfig) { c.RetryMax = 6 }, "config.retry_max must be at most 5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validSuite()
			tc.mutate(&cfg)
			err := Struct(&cfg, "config")
			if err == nil {
				t.Fatal("expected error")
			}
			if !apperrors.IsCode(err, apperrors.ErrCodeValidation) {
				t.Errorf("expected VALIDATION_ERROR, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error containing %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestStructCollectsAllFields(t *testing.T) {
	cfg := suiteConfig{Mode: "slow", Pool: poolConfig{Size: 1}}
	err := Struct(&cfg, "config")
	if err == nil {
		t.Fatal("expected error")
	}

	fields := Fields(err)
	if len(fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d: %v", len(fields), fields)
	}
	if fields[0].Field != "config.name" || fields[0].Message != "is required" {
		t.Errorf("unexpected first field error: %+v", fields[0])
	}
	if fields[1].Field != "config.mode" {
		t.Errorf("unexpected second field error: %+v", fields[1])
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("expected joined messages, got %q", err.Error())
	}
}

func TestStructWithoutRoot(t *testing.T) {
	cfg := validSuite()
	cfg.Name = ""
	err := Struct(&cfg, "")
	if err == nil || !strings.Contains(err.Error(), "VALIDATION_ERROR: name is required") {
		t.Errorf("expected unrooted field name, got %v", err)
	}
}

func TestStructInvalidArgument(t *testing.T) {
	err := Struct(42, "config")
	if err == nil {
		t.Fatal("expected error for non-struct argument")
	}
	if !apperrors.IsCode(err, apperrors.ErrCodeValidation) {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
	if Fields(err) != nil {
		t.Errorf("expected no field errors, got %v", Fields(err))
	}
}

func TestFieldsOfForeignError(t *testing.T) {
	if got := Fields(apperrors.RowNotFound("Employee")); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Name", "name"},
		{"MaxOpenConns", "max_open_conns"},
		{"dsn", "dsn"},
	}
	for _, tc := range tests {
		if got := toSnakeCase(tc.in); got != tc.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
