// Package importer reads session history exports produced by Pomodoro
// timers and converts them into studywatch sessions.
package importer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/studywatch/studywatch/internal/analytics"
)

// record is the wire shape of one exported session. Both JSON-array and
// JSONL exports use the same per-session fields.
type record struct {
	Type      string `json:"session_type"`
	Duration  int    `json:"duration"`
	Subject   string `json:"subject"`
	StartedAt string `json:"started_at"`
}

// ParseFile reads a single export file and returns the sessions it contains.
// Files ending in .jsonl are parsed line by line; anything else is expected
// to hold a JSON array of sessions.
func ParseFile(path string) ([]analytics.Session, error) {
	if strings.HasSuffix(path, ".jsonl") {
		return parseJSONL(path)
	}
	return parseJSONArray(path)
}

// ParseFiles parses multiple export files concurrently. Results are returned
// in the same order as the given paths. The first parse failure aborts the
// whole import.
func ParseFiles(paths []string) ([]analytics.Session, error) {
	results := make([][]analytics.Session, len(paths))

	g := new(errgroup.Group)
	for i, path := range paths {
		g.Go(func() error {
			sessions, err := ParseFile(path)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}
			results[i] = sessions
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []analytics.Session
	for _, sessions := range results {
		all = append(all, sessions...)
	}
	return all, nil
}

// parseJSONArray reads a file holding a JSON array of session records.
func parseJSONArray(path string) ([]analytics.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding session array: %w", err)
	}

	sessions := make([]analytics.Session, 0, len(records))
	for i, r := range records {
		s, err := r.toSession()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// parseJSONL reads a file holding one JSON session record per line.
// Blank lines are skipped.
func parseJSONL(path string) ([]analytics.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sessions []analytics.Session

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var r record
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		s, err := r.toSession()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		sessions = append(sessions, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// toSession validates a record and converts it to a session.
func (r record) toSession() (analytics.Session, error) {
	sessionType := analytics.SessionType(r.Type)
	switch sessionType {
	case analytics.SessionStudy, analytics.SessionShortBreak, analytics.SessionLongBreak:
	default:
		return analytics.Session{}, fmt.Errorf("unknown session type %q", r.Type)
	}

	if r.Duration < 0 {
		return analytics.Session{}, fmt.Errorf("negative duration %d", r.Duration)
	}

	startedAt := ParseTimestamp(r.StartedAt)
	if startedAt.IsZero() {
		return analytics.Session{}, fmt.Errorf("invalid timestamp %q", r.StartedAt)
	}

	return analytics.Session{
		Type:            sessionType,
		DurationMinutes: r.Duration,
		Subject:         strings.TrimSpace(r.Subject),
		StartedAt:       startedAt,
	}, nil
}

// ParseTimestamp parses an ISO 8601 timestamp string. It tries RFC3339Nano,
// RFC3339, and a plain datetime format without timezone. Returns the zero time
// if the string is empty or cannot be parsed by any supported format.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			// Fallback for datetime strings without a timezone suffix.
			t, err = time.Parse("2006-01-02T15:04:05", s)
			if err != nil {
				return time.Time{}
			}
		}
	}
	return t
}
