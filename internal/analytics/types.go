// Package analytics computes study statistics from recorded Pomodoro
// sessions: period summaries with previous-period comparison, day streaks,
// yearly contribution calendars, and best-effort insight stats.
package analytics

import "time"

// SessionType discriminates study intervals from breaks.
type SessionType string

const (
	// SessionStudy is a focused study interval.
	SessionStudy SessionType = "study"

	// SessionShortBreak is a short rest between study intervals.
	SessionShortBreak SessionType = "short_break"

	// SessionLongBreak is a long rest after several study intervals.
	SessionLongBreak SessionType = "long_break"
)

// Uncategorized is the subject assigned to sessions recorded without one.
const Uncategorized = "Uncategorized"

// Session is one recorded study or break interval. Sessions are immutable
// inputs to this package; all date bucketing and ordering derives from
// StartedAt.
type Session struct {
	ID              int64       `json:"id,omitempty"`
	Type            SessionType `json:"session_type"`
	DurationMinutes int         `json:"duration"`
	Subject         string      `json:"subject,omitempty"`
	StartedAt       time.Time   `json:"started_at"`
}

// SubjectLabel returns the session's subject, substituting Uncategorized
// when none was recorded.
func (s Session) SubjectLabel() string {
	if s.Subject == "" {
		return Uncategorized
	}
	return s.Subject
}

// IsStudy reports whether the session is a study interval.
func (s Session) IsStudy() bool {
	return s.Type == SessionStudy
}

// dayKey returns the calendar-day bucket for a time, e.g. "2026-03-14".
// Day keys sort lexicographically in chronological order.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
