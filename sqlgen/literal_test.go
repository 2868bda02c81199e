package sqlgen

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLiteral(t *testing.T) {
	when := time.Date(2024, 3, 9, 14, 5, 7, 250_000_000, time.UTC)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "NULL"},
		{"true", true, "1"},
		{"false", false, "0"},
		{"int", 42, "42"},
		{"negative float", -3.5, "-3.5"},
		{"numeric text", "42", "42"},
		{"decimal text", "-0.50", "-0.50"},
		{"exponent text", "12E4", "'12E4'"},
		{"lowercase exponent text", "1e5", "'1e5'"},
		{"large float", 1e21, "1000000000000000000000"},
		{"decimal", decimal.RequireFromString("12.340"), "12.34"},
		{"text", "Ann", "'Ann'"},
		{"embedded quote", "O'Brien", "'O''Brien'"},
		{"empty text", "", "''"},
		{"time", when, "'2024-03-09 14:05:07.25'"},
		{"nil time pointer", (*time.Time)(nil), "NULL"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Literal(tc.in); got != tc.want {
				t.Errorf("Literal(%v) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestPostgresLiteral_Booleans(t *testing.T) {
	d := Postgres()
	if got := d.Literal(true); got != "TRUE" {
		t.Errorf("got %s, want TRUE", got)
	}
	if got := d.Literal(false); got != "FALSE" {
		t.Errorf("got %s, want FALSE", got)
	}
	if got := d.Literal("x"); got != "'x'" {
		t.Errorf("got %s, want 'x'", got)
	}
}

func TestForDriver(t *testing.T) {
	tests := []struct {
		driver string
		want   string
		ok     bool
	}{
		{"sqlserver", "sqlserver", true},
		{"MSSQL", "sqlserver", true},
		{"sqlite3", "sqlite", true},
		{"pgx", "postgres", true},
		{"oracle", "", false},
	}
	for _, tc := range tests {
		d, ok := ForDriver(tc.driver)
		if ok != tc.ok {
			t.Fatalf("ForDriver(%s) ok = %v, want %v", tc.driver, ok, tc.ok)
		}
		if ok && d.Name() != tc.want {
			t.Errorf("ForDriver(%s) = %s, want %s", tc.driver, d.Name(), tc.want)
		}
	}
}
