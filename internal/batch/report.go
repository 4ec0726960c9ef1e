package batch

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/corpustools/conform/core/errors"
)

const reportSchema = `
CREATE TABLE IF NOT EXISTS conversions (
	run_id       TEXT    NOT NULL,
	file         TEXT    NOT NULL,
	output       TEXT    NOT NULL,
	fingerprint  TEXT    NOT NULL,
	annotations  INTEGER NOT NULL,
	warnings     INTEGER NOT NULL,
	duration_ms  INTEGER NOT NULL,
	created_at   TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_conversions_run ON conversions (run_id);
`

// Report is a SQLite-backed record of batch conversions, one row per
// converted file.
type Report struct {
	db *sql.DB
}

// OpenReport opens (creating if needed) the report database at path.
func OpenReport(path string) (*Report, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if _, err := db.Exec(reportSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "initializing report schema")
	}
	return &Report{db: db}, nil
}

// RecordRun inserts one row per successfully converted file.
func (r *Report) RecordRun(result *Result) error {
	tx, err := r.db.Begin()
	if err != nil {
		return errors.Wrap(err, "starting report transaction")
	}

	stmt, err := tx.Prepare(`INSERT INTO conversions
		(run_id, file, output, fingerprint, annotations, warnings, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "preparing report insert")
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, fr := range result.Files {
		if fr.Err != nil {
			continue
		}
		if _, err := stmt.Exec(result.RunID, fr.Pair.AnnPath, fr.OutputPath,
			fr.Fingerprint, fr.Annotations, fr.Warnings, fr.Duration.Milliseconds(), now); err != nil {
			tx.Rollback()
			return errors.Wrap(err, "recording conversion")
		}
	}

	return tx.Commit()
}

// Close closes the underlying database.
func (r *Report) Close() error {
	return r.db.Close()
}
