package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akyairhashvil/studytimer/internal/models"
	"github.com/google/uuid"
)

// RecordSession stores a completed countdown. A missing ID is generated and a
// zero CompletedAt is stamped with the current time.
func (d *Database) RecordSession(ctx context.Context, s models.Session) (models.Session, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CompletedAt.IsZero() {
		s.CompletedAt = time.Now()
	}
	if s.Mode == "" || s.DurationSeconds <= 0 {
		return s, wrapSessionErr("record", s.ID, fmt.Errorf("invalid session mode=%q duration=%d", s.Mode, s.DurationSeconds))
	}
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO sessions (id, mode, duration_seconds, completed_at) VALUES (?, ?, ?, ?)",
		s.ID, s.Mode, s.DurationSeconds, s.CompletedAt.UTC())
	if err != nil {
		return s, wrapSessionErr("record", s.ID, err)
	}
	return s, nil
}

// ListSessions returns the most recent sessions first. limit <= 0 means all.
func (d *Database) ListSessions(ctx context.Context, limit int) ([]models.Session, error) {
	query := "SELECT id, mode, duration_seconds, completed_at FROM sessions ORDER BY completed_at DESC, id ASC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapSessionErr("list", "", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.Mode, &s.DurationSeconds, &s.CompletedAt); err != nil {
			return nil, wrapSessionErr("list", "", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, wrapSessionErr("list", "", rows.Err())
}

// SummarizeSince aggregates sessions completed at or after since, per mode,
// ordered by mode name.
func (d *Database) SummarizeSince(ctx context.Context, since time.Time) ([]models.SessionSummary, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT mode, COUNT(1), COALESCE(SUM(duration_seconds), 0)
		FROM sessions
		WHERE completed_at >= ?
		GROUP BY mode
		ORDER BY mode ASC`, since.UTC())
	if err != nil {
		return nil, wrapSessionErr("summarize", "", err)
	}
	defer rows.Close()

	var out []models.SessionSummary
	for rows.Next() {
		var s models.SessionSummary
		if err := rows.Scan(&s.Mode, &s.Count, &s.TotalSeconds); err != nil {
			return nil, wrapSessionErr("summarize", "", err)
		}
		out = append(out, s)
	}
	return out, wrapSessionErr("summarize", "", rows.Err())
}

// ClearSessions deletes the whole history and reports how many rows went.
func (d *Database) ClearSessions(ctx context.Context) (int64, error) {
	var removed int64
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM sessions")
		if err != nil {
			return err
		}
		removed, err = res.RowsAffected()
		return err
	})
	return removed, wrapSessionErr("clear", "", err)
}
