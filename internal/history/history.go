// Package history records release events in the local SQLite ledger. The
// ledger is an audit trail, not a gate: callers treat recording failures as
// warnings after the operation itself has already succeeded.
package history

import (
	"database/sql"
	"fmt"
)

// Event is one recorded release operation.
type Event struct {
	ID        int64
	Operation string
	Version   string
	Detail    string
	CreatedAt string
}

// Repository provides access to the release-event ledger.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Record appends one event row. detail may be empty.
func (r *Repository) Record(operation, version, detail string) error {
	_, err := r.db.Exec(
		"INSERT INTO release_events (operation, version, detail, created_at) VALUES (?, ?, ?, datetime('now'))",
		operation, version, detail)
	if err != nil {
		return fmt.Errorf("insert release event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (r *Repository) Recent(limit int) ([]Event, error) {
	rows, err := r.db.Query(
		"SELECT id, operation, version, COALESCE(detail, ''), created_at FROM release_events ORDER BY id DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("query release events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Operation, &e.Version, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
