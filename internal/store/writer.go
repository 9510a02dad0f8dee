package store

import (
	"context"
	"database/sql"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
)

// writer is the set of statements one block load issues.
type writer interface {
	upsertBlock(ctx context.Context, b models.Block) (int64, error)
	purgeBlock(ctx context.Context, blockID int64) error
	upsertDay(ctx context.Context, blockID int64, d dayPlan) (int64, error)
	upsertExercise(ctx context.Context, name string) (int64, error)
	linkDayExercise(ctx context.Context, dayID, exerciseID int64, order int) (int64, error)
	insertSet(ctx context.Context, dayExerciseID int64, rec models.NormalizedSetRecord) error
}

type txWriter struct {
	tx *sql.Tx
}

func (w *txWriter) upsertBlock(ctx context.Context, b models.Block) (int64, error) {
	var id int64
	err := w.tx.QueryRowContext(ctx, `
		INSERT INTO training_blocks (name, block_number, comment, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE
		SET block_number = EXCLUDED.block_number,
		    comment      = EXCLUDED.comment,
		    start_date   = EXCLUDED.start_date,
		    end_date     = EXCLUDED.end_date
		RETURNING block_id`,
		b.Name(), nullInt(b.Number), nullString(b.Comment), b.StartDate, b.EndDate,
	).Scan(&id)
	return id, err
}

func (w *txWriter) purgeBlock(ctx context.Context, blockID int64) error {
	stmts := []string{
		`DELETE FROM exercise_sets
		 WHERE day_exercise_id IN (
		     SELECT de.day_exercise_id FROM day_exercises de
		     JOIN training_days td ON td.day_id = de.day_id
		     WHERE td.block_id = $1)`,
		`DELETE FROM day_exercises
		 WHERE day_id IN (SELECT day_id FROM training_days WHERE block_id = $1)`,
		`DELETE FROM training_days WHERE block_id = $1`,
	}
	for _, stmt := range stmts {
		if _, err := w.tx.ExecContext(ctx, stmt, blockID); err != nil {
			return err
		}
	}
	return nil
}

func (w *txWriter) upsertDay(ctx context.Context, blockID int64, d dayPlan) (int64, error) {
	var id int64
	err := w.tx.QueryRowContext(ctx, `
		INSERT INTO training_days (block_id, day_number, week_day, week, day)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (block_id, day_number) DO UPDATE
		SET week_day = EXCLUDED.week_day,
		    week     = EXCLUDED.week,
		    day      = EXCLUDED.day
		RETURNING day_id`,
		blockID, d.Number, d.WeekDay, nullInt(d.Week), nullInt(d.Day),
	).Scan(&id)
	return id, err
}

func (w *txWriter) upsertExercise(ctx context.Context, name string) (int64, error) {
	var id int64
	err := w.tx.QueryRowContext(ctx, `
		INSERT INTO exercises (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING exercise_id`,
		name,
	).Scan(&id)
	return id, err
}

func (w *txWriter) linkDayExercise(ctx context.Context, dayID, exerciseID int64, order int) (int64, error) {
	var id int64
	err := w.tx.QueryRowContext(ctx, `
		INSERT INTO day_exercises (day_id, exercise_id, exercise_order)
		VALUES ($1, $2, $3)
		ON CONFLICT (day_id, exercise_order) DO UPDATE SET exercise_id = EXCLUDED.exercise_id
		RETURNING day_exercise_id`,
		dayID, exerciseID, order,
	).Scan(&id)
	return id, err
}

func (w *txWriter) insertSet(ctx context.Context, dayExerciseID int64, rec models.NormalizedSetRecord) error {
	_, err := w.tx.ExecContext(ctx, `
		INSERT INTO exercise_sets
		    (day_exercise_id, set_number, prescribed_reps, prescribed_rpe,
		     completed_weight, completed_reps, completed_rpe, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (day_exercise_id, set_number) DO NOTHING`,
		dayExerciseID, rec.SetNumber,
		nullFloat(rec.PrescribedReps), nullFloat(rec.PrescribedRPE),
		nullFloat(rec.CompletedWeight), nullFloat(rec.CompletedReps), nullFloat(rec.CompletedRPE),
		nullString(rec.Notes),
	)
	return err
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n > 0}
}
