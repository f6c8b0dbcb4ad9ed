// Package history keeps an append-only log of store operations in a local
// SQLite database. Recording is best-effort: callers treat failures as
// non-fatal.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const (
	OpSave   = "save"
	OpLoad   = "load"
	OpDelete = "delete"
)

const selectEventsWhere = `SELECT
		id,
		op,
		key,
		size,
		created_at
	FROM events WHERE 1=1
	`

// Event is a single recorded store operation.
type Event struct {
	ID        string
	Op        string
	Key       string
	Size      int
	CreatedAt time.Time
}

// Filter narrows List results. Zero values mean no constraint.
type Filter struct {
	Op    string
	Key   string
	Limit int
}

// Recorder writes and queries the event log.
type Recorder struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at dbPath.
func Open(dbPath string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	r := &Recorder{db: db}
	if err := r.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return r, nil
}

func (r *Recorder) init() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			op TEXT NOT NULL,
			key TEXT NOT NULL,
			size INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_op ON events(op)`,
		`CREATE INDEX IF NOT EXISTS idx_events_key ON events(key)`,
		`CREATE INDEX IF NOT EXISTS idx_events_created_at ON events(created_at)`,
	}

	for _, query := range queries {
		if _, err := r.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

func (r *Recorder) Close() error {
	return r.db.Close()
}

// Record appends an event for op on key. size is the snippet length in bytes
// (zero for deletes).
func (r *Recorder) Record(op, key string, size int) error {
	query := `
		INSERT INTO events (id, op, key, size)
		VALUES (?, ?, ?, ?)
	`

	if _, err := r.db.Exec(query, uuid.New().String(), op, key, size); err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}

	return nil
}

// List returns events matching the filter, newest first.
func (r *Recorder) List(filter Filter) ([]Event, error) {
	query := selectEventsWhere
	args := []any{}

	if filter.Op != "" {
		query += " AND op = ?"
		args = append(args, filter.Op)
	}

	if filter.Key != "" {
		query += " AND key = ?"
		args = append(args, filter.Key)
	}

	query += " ORDER BY created_at DESC, id"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.ID, &event.Op, &event.Key, &event.Size, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// Clear removes all recorded events.
func (r *Recorder) Clear() error {
	if _, err := r.db.Exec("DELETE FROM events"); err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}
	return nil
}

// Count returns the number of recorded events.
func (r *Recorder) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM events").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}
