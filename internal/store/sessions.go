package store

import (
	"database/sql"
	"time"

	"github.com/studywatch/studywatch/internal/analytics"
)

// InsertSession inserts a single session and returns its ID. An empty
// subject is stored as NULL.
func (db *DB) InsertSession(s analytics.Session) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO sessions (session_type, duration_minutes, subject, started_at) VALUES (?, ?, ?, ?)",
		string(s.Type), s.DurationMinutes, nullableText(s.Subject),
		s.StartedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// InsertSessions inserts a batch of sessions in one transaction and returns
// the number inserted. Either all rows are written or none.
func (db *DB) InsertSessions(sessions []analytics.Session) (int, error) {
	if len(sessions) == 0 {
		return 0, nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO sessions (session_type, duration_minutes, subject, started_at) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return 0, err
	}
	defer func() { _ = stmt.Close() }()

	for _, s := range sessions {
		if _, err := stmt.Exec(
			string(s.Type), s.DurationMinutes, nullableText(s.Subject),
			s.StartedAt.Format(time.RFC3339),
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(sessions), nil
}

// ListSessions returns every recorded session ordered by start time
// ascending.
func (db *DB) ListSessions() ([]analytics.Session, error) {
	rows, err := db.conn.Query(
		"SELECT id, session_type, duration_minutes, subject, started_at FROM sessions ORDER BY started_at ASC, id ASC",
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanSessions(rows)
}

// RecentSessions returns the most recent sessions, newest first, capped at
// limit.
func (db *DB) RecentSessions(limit int) ([]analytics.Session, error) {
	rows, err := db.conn.Query(
		"SELECT id, session_type, duration_minutes, subject, started_at FROM sessions ORDER BY started_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanSessions(rows)
}

// CountSessions returns the total number of recorded sessions.
func (db *DB) CountSessions() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count)
	return count, err
}

// DeleteSession removes a session by ID. Deleting a missing ID is not an
// error.
func (db *DB) DeleteSession(id int64) error {
	_, err := db.conn.Exec("DELETE FROM sessions WHERE id = ?", id)
	return err
}

func scanSessions(rows *sql.Rows) ([]analytics.Session, error) {
	var sessions []analytics.Session
	for rows.Next() {
		var s analytics.Session
		var sessionType, startedAt string
		var subject sql.NullString
		if err := rows.Scan(&s.ID, &sessionType, &s.DurationMinutes, &subject, &startedAt); err != nil {
			return nil, err
		}
		s.Type = analytics.SessionType(sessionType)
		s.Subject = subject.String
		s.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// nullableText maps an empty string to NULL for storage.
func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}
