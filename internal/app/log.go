package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywatch/studywatch/internal/analytics"
	"github.com/studywatch/studywatch/internal/config"
	"github.com/studywatch/studywatch/internal/importer"
	"github.com/studywatch/studywatch/internal/output"
)

var (
	logType     string
	logDuration int
	logSubject  string
	logAt       string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a completed session",
	Long: `Record a completed study or break session. Without --duration the
configured default length for the session type is used. Without --at the
session is stamped with the current time.

Valid --type values are study, short_break, and long_break.`,
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logType, "type", "study", "Session type: study, short_break, long_break")
	logCmd.Flags().IntVar(&logDuration, "duration", 0, "Session length in minutes (default from config)")
	logCmd.Flags().StringVar(&logSubject, "subject", "", "Subject studied (default from config)")
	logCmd.Flags().StringVar(&logAt, "at", "", "Start time, e.g. 2026-03-10T09:00:00 (default: now)")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupOutput(cfg)

	sessionType := analytics.SessionType(logType)
	switch sessionType {
	case analytics.SessionStudy, analytics.SessionShortBreak, analytics.SessionLongBreak:
	default:
		return fmt.Errorf("unknown session type %q (want study, short_break, or long_break)", logType)
	}

	duration := logDuration
	if duration == 0 {
		duration = defaultDuration(cfg, sessionType)
	}
	if duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}

	subject := strings.TrimSpace(logSubject)
	if subject == "" && sessionType == analytics.SessionStudy {
		subject = cfg.DefaultSubject
	}

	startedAt := time.Now()
	if logAt != "" {
		startedAt = importer.ParseTimestamp(logAt)
		if startedAt.IsZero() {
			return fmt.Errorf("invalid --at timestamp %q", logAt)
		}
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	session := analytics.Session{
		Type:            sessionType,
		DurationMinutes: duration,
		Subject:         subject,
		StartedAt:       startedAt,
	}
	id, err := db.InsertSession(session)
	if err != nil {
		return fmt.Errorf("recording session: %w", err)
	}

	fmt.Printf(" %s Recorded %s session #%d: %s of %s\n",
		output.StyleSuccess.Render("✓"),
		sessionType, id,
		formatMinutes(duration),
		session.SubjectLabel())

	return nil
}

// defaultDuration returns the configured default length for a session type.
func defaultDuration(cfg *config.Config, t analytics.SessionType) int {
	switch t {
	case analytics.SessionShortBreak:
		return cfg.Durations.ShortBreak
	case analytics.SessionLongBreak:
		return cfg.Durations.LongBreak
	default:
		return cfg.Durations.Study
	}
}
