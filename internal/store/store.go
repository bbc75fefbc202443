// Package store handles SQLite persistence of written reports.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/sahko/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the report archive.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			id INTEGER PRIMARY KEY,
			written_at TEXT NOT NULL,
			kind TEXT NOT NULL,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			path TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_reports_written_at ON reports(written_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertReport archives one written report.
func (s *Store) InsertReport(ctx context.Context, rep model.Report, path string, writtenAt time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO reports (written_at, kind, title, body, path)
		 VALUES (?, ?, ?, ?, ?)`,
		writtenAt.Format(time.RFC3339Nano),
		string(rep.Kind),
		rep.Title(),
		rep.Body(),
		path,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListReports returns archived reports, newest first. A last value of
// zero or less returns everything.
func (s *Store) ListReports(ctx context.Context, last int) ([]model.ArchivedReport, error) {
	query := `SELECT id, written_at, kind, title, body, path
		FROM reports
		ORDER BY written_at DESC, id DESC`
	args := []any{}
	if last > 0 {
		query += ` LIMIT ?`
		args = append(args, last)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var reports []model.ArchivedReport
	for rows.Next() {
		var rep model.ArchivedReport
		var writtenAt, kind string
		if err := rows.Scan(&rep.ID, &writtenAt, &kind, &rep.Title, &rep.Body, &rep.Path); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, writtenAt)
		if err != nil {
			return nil, err
		}
		rep.WrittenAt = parsed
		rep.Kind = model.ReportKind(kind)
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}
