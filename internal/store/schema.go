package store

const schema = `
CREATE TABLE IF NOT EXISTS training_blocks (
    block_id     SERIAL PRIMARY KEY,
    name         TEXT NOT NULL UNIQUE,
    block_number INTEGER,
    comment      TEXT,
    start_date   DATE,
    end_date     DATE
);

CREATE TABLE IF NOT EXISTS training_days (
    day_id     SERIAL PRIMARY KEY,
    block_id   INTEGER NOT NULL REFERENCES training_blocks (block_id),
    day_number INTEGER NOT NULL,
    week_day   TEXT,
    week       INTEGER,
    day        INTEGER,
    UNIQUE (block_id, day_number)
);

CREATE TABLE IF NOT EXISTS exercises (
    exercise_id SERIAL PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS day_exercises (
    day_exercise_id SERIAL PRIMARY KEY,
    day_id          INTEGER NOT NULL REFERENCES training_days (day_id),
    exercise_id     INTEGER NOT NULL REFERENCES exercises (exercise_id),
    exercise_order  INTEGER NOT NULL,
    UNIQUE (day_id, exercise_order)
);

CREATE TABLE IF NOT EXISTS exercise_sets (
    set_id           SERIAL PRIMARY KEY,
    day_exercise_id  INTEGER NOT NULL REFERENCES day_exercises (day_exercise_id),
    set_number       INTEGER NOT NULL,
    prescribed_reps  NUMERIC,
    prescribed_rpe   NUMERIC,
    completed_weight NUMERIC,
    completed_reps   NUMERIC,
    completed_rpe    NUMERIC,
    notes            TEXT,
    UNIQUE (day_exercise_id, set_number)
);
`
