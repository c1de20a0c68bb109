package audit

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"k8s.io/klog/v2"
)

// SQLiteSink implements Sink using SQLite for local persistence
type SQLiteSink struct {
	db     *sql.DB
	dbPath string
	mutex  sync.Mutex
	insert *sql.Stmt
}

// NewSQLiteSink opens (or creates) the audit database at dbPath
func NewSQLiteSink(dbPath string) (*SQLiteSink, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal=WAL&_sync=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sink := &SQLiteSink{
		db:     db,
		dbPath: dbPath,
	}

	if err := sink.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}

	sink.insert, err = db.Prepare(`
		INSERT INTO watttime_calls (
			run_id, endpoint, method, request_url, latitude, longitude, signal_type,
			attempt, status_code, success, duration_ms, response_body, error, timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}

	klog.V(2).InfoS("Opened audit database", "path", dbPath)
	return sink, nil
}

func (s *SQLiteSink) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS watttime_calls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		endpoint TEXT NOT NULL,
		method TEXT NOT NULL,
		request_url TEXT NOT NULL,
		latitude REAL,
		longitude REAL,
		signal_type TEXT,
		attempt INTEGER NOT NULL,
		status_code INTEGER NOT NULL,
		success INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		response_body TEXT,
		error TEXT,
		timestamp DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_watttime_calls_run ON watttime_calls(run_id);
	CREATE INDEX IF NOT EXISTS idx_watttime_calls_timestamp ON watttime_calls(timestamp);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores a call record
func (s *SQLiteSink) Record(ctx context.Context, rec CallRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	_, err := s.insert.ExecContext(ctx,
		rec.RunID,
		rec.Endpoint,
		rec.Method,
		rec.RequestURL,
		nullFloat(rec.Latitude),
		nullFloat(rec.Longitude),
		nullString(rec.SignalType),
		rec.Attempt,
		rec.StatusCode,
		rec.Success,
		rec.Duration.Milliseconds(),
		nullString(Truncate(rec.Response, MaxBodyLength)),
		nullString(rec.Error),
		rec.Timestamp.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert call record: %w", err)
	}
	return nil
}

// Records returns the stored records of a run in insertion order
func (s *SQLiteSink) Records(ctx context.Context, runID string) ([]CallRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, endpoint, method, request_url, latitude, longitude, signal_type,
		       attempt, status_code, success, duration_ms, response_body, error, timestamp
		FROM watttime_calls
		WHERE run_id = ?
		ORDER BY id ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query call records: %w", err)
	}
	defer rows.Close()

	var records []CallRecord
	for rows.Next() {
		var (
			rec                 CallRecord
			lat, lon            sql.NullFloat64
			signal, body, cause sql.NullString
			durationMs          int64
		)
		if err := rows.Scan(&rec.RunID, &rec.Endpoint, &rec.Method, &rec.RequestURL, &lat, &lon, &signal,
			&rec.Attempt, &rec.StatusCode, &rec.Success, &durationMs, &body, &cause, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan call record: %w", err)
		}
		if lat.Valid {
			rec.Latitude = &lat.Float64
		}
		if lon.Valid {
			rec.Longitude = &lon.Float64
		}
		rec.SignalType = signal.String
		rec.Response = body.String
		rec.Error = cause.String
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the database
func (s *SQLiteSink) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.insert != nil {
		s.insert.Close()
	}
	return s.db.Close()
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
