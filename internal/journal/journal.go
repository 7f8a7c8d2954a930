// Package journal keeps a local history of rewrite runs so a mod
// migration can be reconstructed after the fact: which file was
// rewritten, with which mapping, and how many slots changed.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id             TEXT PRIMARY KEY,
	started_at     TEXT NOT NULL,
	command        TEXT NOT NULL,
	input_path     TEXT NOT NULL,
	output_path    TEXT,
	mapping        TEXT NOT NULL,
	effect_hits    INTEGER NOT NULL DEFAULT 0,
	condition_hits INTEGER NOT NULL DEFAULT 0,
	unit_hits      INTEGER NOT NULL DEFAULT 0,
	dry_run        INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// Run is one journaled rewrite.
type Run struct {
	ID            string
	StartedAt     time.Time
	Command       string
	InputPath     string
	OutputPath    string
	Mapping       map[int]int
	EffectHits    int
	ConditionHits int
	UnitHits      int
	DryRun        bool
}

// Journal is a sqlite-backed run history.
type Journal struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal database at path.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}
	// sqlite supports one writer at a time
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close releases the database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record inserts a run, assigning an ID and start timestamp when not
// already set.
func (j *Journal) Record(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	mapping, err := json.Marshal(run.Mapping)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	_, err = j.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, command, input_path, output_path, mapping,
			effect_hits, condition_hits, unit_hits, dry_run)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.Format(time.RFC3339Nano),
		run.Command,
		run.InputPath,
		run.OutputPath,
		string(mapping),
		run.EffectHits,
		run.ConditionHits,
		run.UnitHits,
		boolToInt(run.DryRun),
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// List returns runs newest first, at most limit (0 means no limit).
func (j *Journal) List(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, started_at, command, input_path, output_path, mapping,
			effect_hits, condition_hits, unit_hits, dry_run
		FROM runs ORDER BY started_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			startedAt  string
			outputPath sql.NullString
			mapping    string
			dryRun     int
		)
		if err := rows.Scan(&run.ID, &startedAt, &run.Command, &run.InputPath,
			&outputPath, &mapping, &run.EffectHits, &run.ConditionHits,
			&run.UnitHits, &dryRun); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
		run.OutputPath = outputPath.String
		run.DryRun = dryRun != 0
		if err := json.Unmarshal([]byte(mapping), &run.Mapping); err != nil {
			return nil, fmt.Errorf("failed to unmarshal mapping for run %s: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
