// Package main provides the CLI entry point for liftsheet.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/liftsheet/liftsheet-go/internal/config"
	"github.com/liftsheet/liftsheet-go/internal/logging"
	"github.com/liftsheet/liftsheet-go/pkg/liftsheet"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	logLevel     string
	sheetID      string
	allSheets    bool
	headerPolicy string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "liftsheet",
		Short: "Extract training sets from block spreadsheets",
		Long: `liftsheet reads training block worksheets (xlsx, xls or Google Sheets),
extracts one record per performed set and writes JSON, CSV or PostgreSQL.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML options file")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: LOG_LEVEL)")
	flags.StringVar(&sheetID, "sheet-id", "", "Google spreadsheet id (default: SHEET_ID)")
	flags.BoolVar(&allSheets, "all-sheets", false, "Extract every worksheet, not only block sheets")
	flags.StringVar(&headerPolicy, "header-policy", "", "On a missing header: abort or skip (default: abort)")

	rootCmd.AddCommand(newExtractCmd(), newLoadCmd())
	return rootCmd
}

// app is the per-invocation state shared by commands.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	opts     liftsheet.Options
	closeLog func() error
}

func newApp(component string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	log, closeLog, err := logging.New(level, cfg.LogFile)
	if err != nil {
		return nil, err
	}
	log = log.With("component", component, "run_id", uuid.New().String())

	opts := cfg.Options()
	if configPath != "" {
		if opts, err = config.ApplyOptionsFile(configPath, opts); err != nil {
			closeLog()
			return nil, err
		}
	}
	if allSheets {
		opts.AllSheets = true
	}
	switch p := liftsheet.HeaderPolicy(headerPolicy); p {
	case "":
	case liftsheet.HeaderPolicyAbort, liftsheet.HeaderPolicySkip:
		opts.HeaderPolicy = p
	default:
		closeLog()
		return nil, fmt.Errorf("invalid header policy: %s (must be abort or skip)", headerPolicy)
	}
	opts.Logger = log

	return &app{cfg: cfg, log: log, opts: opts, closeLog: closeLog}, nil
}

func (a *app) Close() error {
	return a.closeLog()
}
