package analytics

import (
	"sort"
	"time"
)

// Streaks holds the consecutive-study-day counters. Current never exceeds
// Best.
type Streaks struct {
	// Current is the live streak ending today or yesterday. Studying
	// yesterday but not yet today still counts (one grace day).
	Current int `json:"current"`

	// Best is the longest streak anywhere in history.
	Best int `json:"best"`
}

// ComputeStreaks derives the current and best streaks from all-time session
// records. Only study sessions count toward a day; multiple sessions on the
// same day collapse into one. The current streak requires the most recent
// study day to be today or yesterday relative to now, while the best streak
// is a pure historical maximum, so the two walks stay separate.
func ComputeStreaks(sessions []Session, now time.Time) Streaks {
	days := uniqueStudyDaysDesc(sessions)
	if len(days) == 0 {
		return Streaks{}
	}

	today := dayKey(now)
	yesterday := dayKey(now.AddDate(0, 0, -1))

	// Current streak: walk backward from the most recent day while days
	// stay consecutive.
	var current int
	if days[0] == today || days[0] == yesterday {
		current = 1
		for i := 1; i < len(days); i++ {
			if !isDayBefore(days[i], days[i-1]) {
				break
			}
			current++
		}
	}

	// Best streak: one unconditional scan tracking the longest run.
	best := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if isDayBefore(days[i], days[i-1]) {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}

	if current > best {
		best = current
	}
	return Streaks{Current: current, Best: best}
}

// uniqueStudyDaysDesc projects study sessions onto their calendar days,
// deduplicates, and sorts most recent first.
func uniqueStudyDaysDesc(sessions []Session) []string {
	seen := make(map[string]bool)
	var days []string
	for _, s := range sessions {
		if !s.IsStudy() {
			continue
		}
		key := dayKey(s.StartedAt)
		if !seen[key] {
			seen[key] = true
			days = append(days, key)
		}
	}
	// Day keys sort lexicographically in date order.
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	return days
}

// isDayBefore reports whether day a is exactly one calendar day before day b.
func isDayBefore(a, b string) bool {
	tb, err := time.Parse("2006-01-02", b)
	if err != nil {
		return false
	}
	return dayKey(tb.AddDate(0, 0, -1)) == a
}
