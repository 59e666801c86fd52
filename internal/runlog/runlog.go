// Package runlog records pipeline runs in a SQLite database so past
// generate and validate invocations can be reviewed from the CLI.
package runlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/halvdan/iconpack/internal/paths"

	_ "modernc.org/sqlite"
)

// Run is one recorded pipeline invocation. CoverageW and CoverageH are
// nil when the run never reached coverage measurement.
type Run struct {
	Time      time.Time
	Command   string
	Dir       string
	OK        bool
	Detail    string
	CoverageW *float64
	CoverageH *float64
	IcoSizes  string
	Duration  time.Duration
}

// Store abstracts run history storage.
type Store interface {
	Record(r Run) error
	Recent(limit int) ([]Run, error)

	// Maintenance
	Clean(days int) (int, error) // remove old runs, return removed count
	Clear() error                // delete all data

	// Metadata
	Path() string
	Close() error
}

// DefaultPath returns the default history database location inside the
// iconpack data directory.
func DefaultPath() string {
	return filepath.Join(paths.DataDir(), paths.HistoryDBName)
}

// DayCutoff returns midnight at the start of the oldest day kept when
// retaining the last `days` days (so days=1 keeps today only).
func DayCutoff(days int) time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -(days - 1))
}

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) a SQLite database at path and creates the
// schema if needed.
func Open(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Set PRAGMAs before any DDL.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp   TEXT    NOT NULL,
    command     TEXT    NOT NULL,
    dir         TEXT    NOT NULL DEFAULT '',
    ok          INTEGER NOT NULL,
    detail      TEXT    NOT NULL DEFAULT '',
    coverage_w  REAL,
    coverage_h  REAL,
    ico_sizes   TEXT    NOT NULL DEFAULT '',
    duration_ms INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Record(r Run) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	okInt := 0
	if r.OK {
		okInt = 1
	}
	var covW, covH any
	if r.CoverageW != nil {
		covW = *r.CoverageW
	}
	if r.CoverageH != nil {
		covH = *r.CoverageH
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (timestamp, command, dir, ok, detail, coverage_w, coverage_h, ico_sizes, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ts.Format(time.RFC3339), r.Command, r.Dir, okInt, r.Detail,
		covW, covH, r.IcoSizes, r.Duration.Milliseconds(),
	)
	return err
}

// Recent returns up to limit runs in chronological order, newest last.
// limit <= 0 returns everything.
func (s *SQLiteStore) Recent(limit int) ([]Run, error) {
	query := `SELECT timestamp, command, dir, ok, detail, coverage_w, coverage_h, ico_sizes, duration_ms
		FROM runs ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			tsStr, command, dir, detail, icoSizes string
			okInt                                 int
			covW, covH                            sql.NullFloat64
			durationMS                            int64
		)
		if err := rows.Scan(&tsStr, &command, &dir, &okInt, &detail, &covW, &covH, &icoSizes, &durationMS); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			continue
		}
		r := Run{
			Time:     ts,
			Command:  command,
			Dir:      dir,
			OK:       okInt != 0,
			Detail:   detail,
			IcoSizes: icoSizes,
			Duration: time.Duration(durationMS) * time.Millisecond,
		}
		if covW.Valid {
			v := covW.Float64
			r.CoverageW = &v
		}
		if covH.Valid {
			v := covH.Float64
			r.CoverageH = &v
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The query walks newest-first to honor the limit; flip back to
	// chronological order for display.
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}
	return runs, nil
}

func (s *SQLiteStore) Clean(days int) (int, error) {
	cutoff := DayCutoff(days).Format(time.RFC3339)
	res, err := s.db.Exec(`DELETE FROM runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM runs`)
	return err
}

func (s *SQLiteStore) Path() string {
	return s.path
}
