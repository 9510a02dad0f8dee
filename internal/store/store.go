// Package store loads extracted training blocks into PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lib/pq"
	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
)

const maxAttempts = 3

// Store writes blocks, days, exercises and sets. Each block is loaded in
// its own transaction.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// LoadResult summarizes one committed block.
type LoadResult struct {
	Block     string
	BlockID   int64
	Days      int
	Exercises int
	Sets      int
	Skipped   int
}

// Open connects to PostgreSQL using a lib/pq DSN.
func Open(ctx context.Context, dsn string, log *slog.Logger) (*Store, error) {
	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	db := sql.OpenDB(connector)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect: %w", err)
	}
	return New(db, log), nil
}

// New wraps an existing connection pool.
func New(db *sql.DB, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{db: db, log: log.With("component", "store")}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates any missing tables.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// LoadWorkbook loads every sheet that has records. A failing block is
// rolled back on its own and the remaining blocks still load; all failures
// are joined into the returned error.
func (s *Store) LoadWorkbook(ctx context.Context, wb *models.WorkbookData) ([]LoadResult, error) {
	var (
		results []LoadResult
		errs    []error
	)

	for _, sheet := range wb.Sheets {
		if len(sheet.Normalized) == 0 {
			s.log.Info("no data found, skipping", "block", sheet.Block.Name())
			continue
		}

		res, err := s.LoadBlock(ctx, sheet.Block, sheet.Normalized)
		if err != nil {
			s.log.Error("block load failed", "block", sheet.Block.Name(), "error", err)
			errs = append(errs, err)
			continue
		}
		results = append(results, *res)
	}

	return results, errors.Join(errs...)
}

// LoadBlock replaces everything stored for block with records. Transactions
// aborted by the server with a rollback-class error are retried.
func (s *Store) LoadBlock(ctx context.Context, block models.Block, records []models.NormalizedSetRecord) (*LoadResult, error) {
	plan := planBlock(records)
	if plan.Skipped > 0 {
		s.log.Warn("skipped records without exercise name", "block", block.Name(), "count", plan.Skipped)
	}

	var (
		res *LoadResult
		err error
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		res, err = s.loadOnce(ctx, block, plan)
		if err == nil || !isRetryable(err) {
			break
		}
		s.log.Warn("retrying block load", "block", block.Name(), "attempt", attempt, "error", err)
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("block loaded",
		"block", res.Block,
		"block_id", res.BlockID,
		"days", res.Days,
		"sets", res.Sets,
	)
	return res, nil
}

func (s *Store) loadOnce(ctx context.Context, block models.Block, plan blockPlan) (*LoadResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &LoadError{Block: block.Name(), Err: err}
	}

	res, err := applyPlan(ctx, &txWriter{tx: tx}, block, plan)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Error("rollback failed", "block", block.Name(), "error", rbErr)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &LoadError{Block: block.Name(), Err: err}
	}
	return res, nil
}

// applyPlan upserts the block, purges its previous days and writes the plan.
func applyPlan(ctx context.Context, w writer, block models.Block, plan blockPlan) (*LoadResult, error) {
	name := block.Name()

	blockID, err := w.upsertBlock(ctx, block)
	if err != nil {
		return nil, &LoadError{Block: name, Err: fmt.Errorf("upsert block: %w", err)}
	}
	if err := w.purgeBlock(ctx, blockID); err != nil {
		return nil, &LoadError{Block: name, Err: fmt.Errorf("purge block: %w", err)}
	}

	res := &LoadResult{Block: name, BlockID: blockID, Skipped: plan.Skipped}
	for _, day := range plan.Days {
		if err := applyDay(ctx, w, blockID, day, res); err != nil {
			return nil, &LoadError{Block: name, WeekDay: day.WeekDay, Err: err}
		}
		res.Days++
	}
	return res, nil
}

func applyDay(ctx context.Context, w writer, blockID int64, day dayPlan, res *LoadResult) error {
	dayID, err := w.upsertDay(ctx, blockID, day)
	if err != nil {
		return fmt.Errorf("upsert day: %w", err)
	}

	for _, ex := range day.Exercises {
		exerciseID, err := w.upsertExercise(ctx, ex.Name)
		if err != nil {
			return fmt.Errorf("upsert exercise %q: %w", ex.Name, err)
		}
		linkID, err := w.linkDayExercise(ctx, dayID, exerciseID, ex.Order)
		if err != nil {
			return fmt.Errorf("link exercise %q: %w", ex.Name, err)
		}
		for _, set := range ex.Sets {
			if err := w.insertSet(ctx, linkID, set); err != nil {
				return fmt.Errorf("insert %q set %d: %w", ex.Name, set.SetNumber, err)
			}
			res.Sets++
		}
		res.Exercises++
	}
	return nil
}
