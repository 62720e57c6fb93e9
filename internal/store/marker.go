package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// markerKey is the fixed storage key for the single completion record.
const markerKey = "trading_quiz_completed_v4"

// Marker is the durable record written once at quiz completion.
// Its presence, not its content, blocks repeat sessions.
type Marker struct {
	SessionID string
	Name      string
	Date      time.Time
	Score     int
}

// MarkerRepo manages the completion marker.
type MarkerRepo interface {
	// Save writes the marker, replacing any existing one.
	Save(ctx context.Context, m *Marker) error

	// Get returns the marker, or nil if none exists.
	Get(ctx context.Context) (*Marker, error)

	// Clear deletes the marker. The out-of-band escape from a blocked state.
	Clear(ctx context.Context) error
}

type markerRepo struct {
	db *sql.DB
}

func (r *markerRepo) Save(ctx context.Context, m *Marker) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO completion_marker (key, session_id, name, date, score)
		 VALUES (?, ?, ?, ?, ?)`,
		markerKey, m.SessionID, m.Name, m.Date.UTC().Format(time.RFC3339), m.Score,
	)
	if err != nil {
		return fmt.Errorf("save completion marker: %w", err)
	}
	return nil
}

func (r *markerRepo) Get(ctx context.Context) (*Marker, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT session_id, name, date, score FROM completion_marker WHERE key = ?`,
		markerKey,
	)

	var m Marker
	var date string
	if err := row.Scan(&m.SessionID, &m.Name, &date, &m.Score); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query completion marker: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return nil, fmt.Errorf("parse marker date: %w", err)
	}
	m.Date = parsed

	return &m, nil
}

func (r *markerRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM completion_marker WHERE key = ?`, markerKey,
	); err != nil {
		return fmt.Errorf("clear completion marker: %w", err)
	}
	return nil
}
