package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet"
)

var envKeys = []string{
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"GOOGLE_CREDS", "SHEET_ID", "SHEET_ID_FILE",
	"DEFAULT_BODYWEIGHT", "LOG_LEVEL", "ETL_LOG_FILE",
}

// clearEnv blanks every variable Load reads; t.Setenv restores them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	expected := "host=db port=5432 user=myuser password=mypassword dbname=mydatabase sslmode=disable"
	if got := cfg.DSN(); got != expected {
		t.Errorf("DSN() = %q, expected %q", got, expected)
	}
	if cfg.DefaultBodyweight != 100 {
		t.Errorf("DefaultBodyweight = %v, expected 100", cfg.DefaultBodyweight)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, expected info", cfg.LogLevel)
	}
}

func TestLoadFile_EnvFileAndOverrides(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, ".env", `
# database
DB_HOST=localhost
export DB_NAME="training"
DB_USER='lifter'
DEFAULT_BODYWEIGHT=82.5
not a pair
`)
	t.Setenv("DB_HOST", "postgres.internal")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.DBHost != "postgres.internal" {
		t.Errorf("DBHost = %q, expected environment to win", cfg.DBHost)
	}
	if cfg.DBName != "training" || cfg.DBUser != "lifter" {
		t.Errorf("DBName/DBUser = %q/%q, expected training/lifter", cfg.DBName, cfg.DBUser)
	}
	if cfg.DefaultBodyweight != 82.5 {
		t.Errorf("DefaultBodyweight = %v, expected 82.5", cfg.DefaultBodyweight)
	}
	if got := cfg.Options().Normalizer.Bodyweight; got != 82.5 {
		t.Errorf("Options().Normalizer.Bodyweight = %v, expected 82.5", got)
	}
}

func TestLoadFile_InvalidBodyweight(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEFAULT_BODYWEIGHT", "heavy")

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for non-numeric DEFAULT_BODYWEIGHT")
	}
}

func TestSpreadsheetID(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		cfg := &Config{SheetID: "abc", SheetIDFile: "/nonexistent"}
		if id, err := cfg.SpreadsheetID(); err != nil || id != "abc" {
			t.Errorf("SpreadsheetID() = %q, %v, expected abc", id, err)
		}
	})

	t.Run("from file", func(t *testing.T) {
		cfg := &Config{SheetIDFile: writeFile(t, "sheet_id", "  1AbC-xyz\n")}
		if id, err := cfg.SpreadsheetID(); err != nil || id != "1AbC-xyz" {
			t.Errorf("SpreadsheetID() = %q, %v, expected 1AbC-xyz", id, err)
		}
	})

	t.Run("unset", func(t *testing.T) {
		cfg := &Config{}
		if _, err := cfg.SpreadsheetID(); !errors.Is(err, ErrNoSpreadsheet) {
			t.Errorf("expected ErrNoSpreadsheet, got %v", err)
		}
	})
}

func TestApplyOptionsFile(t *testing.T) {
	path := writeFile(t, "liftsheet.yaml", `
offsets:
  prescribed_rpe: 5
  completed_rpe: 13
rpe_high_band: 8
header_policy: skip
thread_previous_rpe: true
concurrency: 2
`)

	opts, err := ApplyOptionsFile(path, liftsheet.DefaultOptions())
	if err != nil {
		t.Fatalf("ApplyOptionsFile failed: %v", err)
	}

	if opts.Offsets.PrescribedRPE != 5 || opts.Offsets.CompletedRPE != 13 {
		t.Errorf("offsets = %+v, expected prescribed_rpe 5 and completed_rpe 13", opts.Offsets)
	}
	if opts.Offsets.PrescribedReps != 3 || opts.Offsets.CompletedWeight != 10 {
		t.Errorf("offsets = %+v, expected untouched defaults", opts.Offsets)
	}
	if opts.Normalizer.HighBand != 8 || opts.Normalizer.LowBand != 5 || opts.Normalizer.Bodyweight != 100 {
		t.Errorf("normalizer = %+v, expected high band 8 with other defaults", opts.Normalizer)
	}
	if opts.HeaderPolicy != liftsheet.HeaderPolicySkip {
		t.Errorf("HeaderPolicy = %q, expected skip", opts.HeaderPolicy)
	}
	if !opts.ThreadPreviousRPE || opts.Concurrency != 2 || opts.AllSheets {
		t.Errorf("options = %+v, expected threading on, concurrency 2, all_sheets off", opts)
	}
}

func TestApplyOptionsFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown policy", "header_policy: ignore\n"},
		{"bad yaml", "offsets: [1, 2\n"},
		{"wrong type", "concurrency: many\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "liftsheet.yaml", tt.content)
			if _, err := ApplyOptionsFile(path, liftsheet.DefaultOptions()); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := ApplyOptionsFile(filepath.Join(t.TempDir(), "missing.yaml"), liftsheet.DefaultOptions()); err == nil {
		t.Error("expected error for missing file")
	}
}
