package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/liftsheet/liftsheet-go/internal/store"
	"github.com/robfig/cron"
	"github.com/spf13/cobra"
)

var (
	dryRun   bool
	schedule string
	migrate  bool
)

func newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load [input.xlsx|input.xls]",
		Short: "Extract set records and load them into PostgreSQL",
		Long: `Extract set records and load each block into PostgreSQL in its own
transaction. Without a file argument the Google spreadsheet named by
--sheet-id / SHEET_ID is read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLoad,
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Extract and report without writing to the database")
	cmd.Flags().StringVar(&schedule, "schedule", "", `Run repeatedly on a cron schedule, e.g. "@every 1h" or "0 0 6 * * *"`)
	cmd.Flags().BoolVar(&migrate, "migrate", true, "Create missing tables before loading")

	return cmd
}

func runLoad(cmd *cobra.Command, args []string) error {
	a, err := newApp("load")
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var st *store.Store
	if !dryRun {
		if st, err = store.Open(ctx, a.cfg.DSN(), a.log); err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		if migrate {
			if err := st.Migrate(ctx); err != nil {
				return err
			}
		}
	}

	if schedule == "" {
		return a.load(ctx, st, args)
	}

	c := cron.New()
	err = c.AddFunc(schedule, func() {
		if err := a.load(ctx, st, args); err != nil {
			a.log.Error("scheduled load failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	a.log.Info("scheduler started", "schedule", schedule)
	c.Start()
	<-ctx.Done()
	c.Stop()
	a.log.Info("scheduler stopped")
	return nil
}

// load runs one extract-and-load pass. A nil store reports what would be
// loaded.
func (a *app) load(ctx context.Context, st *store.Store, args []string) error {
	wb, err := a.extract(ctx, args)
	if err != nil {
		return err
	}

	if st == nil {
		for _, s := range wb.Sheets {
			a.log.Info("dry run",
				"block", s.Block.Name(),
				"records", len(s.Normalized),
				"failures", len(s.Failures),
			)
		}
		return nil
	}

	results, err := st.LoadWorkbook(ctx, wb)
	sets := 0
	for _, r := range results {
		sets += r.Sets
	}
	a.log.Info("load complete", "blocks", len(results), "sets", sets)
	return err
}
