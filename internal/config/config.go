// Package config loads process configuration from the environment, a .env
// file and an optional YAML options file.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet"
	"gopkg.in/yaml.v3"
)

// ErrNoSpreadsheet indicates neither SHEET_ID nor SHEET_ID_FILE is set.
var ErrNoSpreadsheet = errors.New("SHEET_ID or SHEET_ID_FILE must be set")

// Config holds process configuration.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Google Sheets
	GoogleCreds string
	SheetID     string
	SheetIDFile string

	DefaultBodyweight float64

	LogLevel string
	LogFile  string
}

// Load reads configuration from environment variables, falling back to a
// .env file in the working directory and then to defaults.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit .env path. A missing file is not an
// error.
func LoadFile(envPath string) (*Config, error) {
	env, err := loadEnvFile(envPath)
	if err != nil {
		env = make(map[string]string)
	}

	getEnv := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		if value, ok := env[key]; ok && value != "" {
			return value
		}
		return defaultValue
	}

	bodyweight, err := strconv.ParseFloat(getEnv("DEFAULT_BODYWEIGHT", "100"), 64)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_BODYWEIGHT: %w", err)
	}

	cfg := &Config{
		DBHost:     getEnv("DB_HOST", "db"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "myuser"),
		DBPassword: getEnv("DB_PASSWORD", "mypassword"),
		DBName:     getEnv("DB_NAME", "mydatabase"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		GoogleCreds: getEnv("GOOGLE_CREDS", ""),
		SheetID:     getEnv("SHEET_ID", ""),
		SheetIDFile: getEnv("SHEET_ID_FILE", ""),

		DefaultBodyweight: bodyweight,

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("ETL_LOG_FILE", ""),
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// SpreadsheetID returns SHEET_ID, or the trimmed contents of SHEET_ID_FILE.
func (c *Config) SpreadsheetID() (string, error) {
	if c.SheetID != "" {
		return c.SheetID, nil
	}
	if c.SheetIDFile == "" {
		return "", ErrNoSpreadsheet
	}
	data, err := os.ReadFile(c.SheetIDFile)
	if err != nil {
		return "", fmt.Errorf("read SHEET_ID_FILE: %w", err)
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", ErrNoSpreadsheet
	}
	return id, nil
}

// Options returns default extraction options with the configured
// bodyweight applied.
func (c *Config) Options() liftsheet.Options {
	opts := liftsheet.DefaultOptions()
	opts.Normalizer.Bodyweight = c.DefaultBodyweight
	return opts
}

// optionsFile mirrors the YAML options file. Absent keys leave the
// corresponding option unchanged.
type optionsFile struct {
	Offsets           *offsetsFile `yaml:"offsets"`
	Bodyweight        *float64     `yaml:"bodyweight"`
	HighBand          *float64     `yaml:"rpe_high_band"`
	LowBand           *float64     `yaml:"rpe_low_band"`
	HeaderPolicy      *string      `yaml:"header_policy"`
	ThreadPreviousRPE *bool        `yaml:"thread_previous_rpe"`
	Concurrency       *int         `yaml:"concurrency"`
	AllSheets         *bool        `yaml:"all_sheets"`
}

type offsetsFile struct {
	PrescribedReps  *int `yaml:"prescribed_reps"`
	PrescribedRPE   *int `yaml:"prescribed_rpe"`
	CompletedWeight *int `yaml:"completed_weight"`
	CompletedReps   *int `yaml:"completed_reps"`
	CompletedRPE    *int `yaml:"completed_rpe"`
}

// ApplyOptionsFile overlays the YAML file at path onto opts.
func ApplyOptionsFile(path string, opts liftsheet.Options) (liftsheet.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read options file: %w", err)
	}

	var f optionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return opts, fmt.Errorf("parse options file %s: %w", path, err)
	}

	if o := f.Offsets; o != nil {
		setInt(&opts.Offsets.PrescribedReps, o.PrescribedReps)
		setInt(&opts.Offsets.PrescribedRPE, o.PrescribedRPE)
		setInt(&opts.Offsets.CompletedWeight, o.CompletedWeight)
		setInt(&opts.Offsets.CompletedReps, o.CompletedReps)
		setInt(&opts.Offsets.CompletedRPE, o.CompletedRPE)
	}
	if f.Bodyweight != nil {
		opts.Normalizer.Bodyweight = *f.Bodyweight
	}
	if f.HighBand != nil {
		opts.Normalizer.HighBand = *f.HighBand
	}
	if f.LowBand != nil {
		opts.Normalizer.LowBand = *f.LowBand
	}
	if f.HeaderPolicy != nil {
		switch p := liftsheet.HeaderPolicy(*f.HeaderPolicy); p {
		case liftsheet.HeaderPolicyAbort, liftsheet.HeaderPolicySkip:
			opts.HeaderPolicy = p
		default:
			return opts, fmt.Errorf("header_policy: unknown value %q", *f.HeaderPolicy)
		}
	}
	if f.ThreadPreviousRPE != nil {
		opts.ThreadPreviousRPE = *f.ThreadPreviousRPE
	}
	if f.Concurrency != nil {
		setInt(&opts.Concurrency, f.Concurrency)
	}
	if f.AllSheets != nil {
		opts.AllSheets = *f.AllSheets
	}

	return opts, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// loadEnvFile reads KEY=VALUE lines, ignoring blanks and # comments.
func loadEnvFile(filename string) (map[string]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	env := make(map[string]string)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		env[key] = value
	}

	return env, scanner.Err()
}
