package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/akyairhashvil/focus/internal/models"
)

// InsertSession stores a new open session record.
func (d *Database) InsertSession(ctx context.Context, s *models.FocusSession) error {
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO focus_sessions (id, task_name, start_time, end_time, duration_seconds, is_completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.TaskName, s.StartTime, nullableTime(s.EndTime), int64(s.Duration/time.Second), s.IsCompleted, s.CreatedAt)
	return wrapSessionErr("insert", s.ID, err)
}

// FinishSession applies the single terminal mutation to an open session:
// end time, duration and completion flag. The record is never touched again.
func (d *Database) FinishSession(ctx context.Context, id string, endTime time.Time, duration time.Duration, completed bool) error {
	_, err := d.DB.ExecContext(ctx, `
		UPDATE focus_sessions
		SET end_time = ?, duration_seconds = ?, is_completed = ?
		WHERE id = ?`,
		endTime, int64(duration/time.Second), completed, id)
	return wrapSessionErr("finish", id, err)
}

// SessionsSince retrieves sessions with start_time >= since, newest first.
func (d *Database) SessionsSince(ctx context.Context, since time.Time) ([]models.FocusSession, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, task_name, start_time, end_time, duration_seconds, is_completed, created_at
		FROM focus_sessions
		WHERE start_time >= ?
		ORDER BY start_time DESC`, since)
	if err != nil {
		return nil, wrapSessionErr("query", "", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

// AllSessions retrieves every session, newest start first.
func (d *Database) AllSessions(ctx context.Context) ([]models.FocusSession, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, task_name, start_time, end_time, duration_seconds, is_completed, created_at
		FROM focus_sessions
		ORDER BY start_time DESC`)
	if err != nil {
		return nil, wrapSessionErr("query", "", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

// DeleteSession removes a session record.
func (d *Database) DeleteSession(ctx context.Context, id string) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM focus_sessions WHERE id = ?", id)
	return wrapSessionErr("delete", id, err)
}

func scanSessions(rows *sql.Rows) ([]models.FocusSession, error) {
	var sessions []models.FocusSession
	for rows.Next() {
		var s models.FocusSession
		var end sql.NullTime
		var seconds int64
		if err := rows.Scan(&s.ID, &s.TaskName, &s.StartTime, &end, &seconds, &s.IsCompleted, &s.CreatedAt); err != nil {
			return nil, wrapSessionErr("scan", s.ID, err)
		}
		if end.Valid {
			t := end.Time
			s.EndTime = &t
		}
		s.Duration = time.Duration(seconds) * time.Second
		sessions = append(sessions, s)
	}
	return sessions, wrapSessionErr("iterate", "", rows.Err())
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
