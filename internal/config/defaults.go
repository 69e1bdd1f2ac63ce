// Package config provides configuration loading and defaults for studywatch.
package config

// DefaultConfigDir is the default location for studywatch configuration.
const DefaultConfigDir = "~/.config/studywatch"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "studywatch.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultFilter is the period filter used when none is given.
const DefaultFilter = "week"

// DefaultSubject is the subject applied to sessions logged without one.
// Empty means uncategorized.
const DefaultSubject = ""

// DefaultDailyGoalMinutes is the study-minutes target for the daily goal bar.
const DefaultDailyGoalMinutes = 120

// DefaultDurations holds the classic Pomodoro interval lengths in minutes.
var DefaultDurations = Durations{
	Study:      25,
	ShortBreak: 5,
	LongBreak:  15,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
