package app

import (
	"fmt"

	"github.com/studywatch/studywatch/internal/config"
	"github.com/studywatch/studywatch/internal/output"
	"github.com/studywatch/studywatch/internal/store"
)

// setupOutput applies the color preferences from flags and config. The
// --no-color flag and a color=false config both force plain output;
// otherwise color is auto-detected from the terminal.
func setupOutput(cfg *config.Config) {
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
		return
	}
	output.AutoDetect()
}

// openDB opens the session database at the configured path.
func openDB(cfg *config.Config) (*store.DB, error) {
	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// formatMinutes renders a minute total as a compact duration, e.g. "45m"
// or "2h 5m".
func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// formatDays renders a day count with its unit.
func formatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// percentChange computes the percentage change from previous to current.
// The second return is false when previous is zero and no meaningful
// percentage exists.
func percentChange(current, previous int) (float64, bool) {
	if previous == 0 {
		return 0, false
	}
	return (float64(current) - float64(previous)) / float64(previous) * 100, true
}
