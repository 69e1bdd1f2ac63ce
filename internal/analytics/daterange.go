package analytics

import "time"

// TimeFilter selects the aggregation window for a report.
type TimeFilter string

const (
	FilterToday   TimeFilter = "today"
	FilterWeek    TimeFilter = "week"
	FilterMonth   TimeFilter = "month"
	FilterAllTime TimeFilter = "all-time"
)

// ParseTimeFilter maps a string to a TimeFilter. Unrecognized values fall
// back to FilterAllTime.
func ParseTimeFilter(s string) TimeFilter {
	switch TimeFilter(s) {
	case FilterToday, FilterWeek, FilterMonth, FilterAllTime:
		return TimeFilter(s)
	default:
		return FilterAllTime
	}
}

// DateRange bounds a period. A zero Start or End means unbounded on that
// side; the all-time range is unbounded on both.
type DateRange struct {
	Start time.Time `json:"start,omitzero"`
	End   time.Time `json:"end,omitzero"`
}

// Contains reports whether t falls within the range. Both bounds are
// inclusive.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// SelectRanges computes the current and comparison (previous) period bounds
// for a filter, anchored to now. The previous range always covers the full
// prior calendar day, week, or month of equal kind; weeks start on Monday.
// For FilterAllTime both ranges are unbounded.
func SelectRanges(filter TimeFilter, now time.Time) (current, previous DateRange) {
	switch filter {
	case FilterToday:
		start := startOfDay(now)
		current = DateRange{Start: start, End: now}
		previous = DateRange{
			Start: start.AddDate(0, 0, -1),
			End:   start.Add(-time.Nanosecond),
		}
	case FilterWeek:
		start := startOfWeek(now)
		current = DateRange{Start: start, End: now}
		previous = DateRange{
			Start: start.AddDate(0, 0, -7),
			End:   start.Add(-time.Nanosecond),
		}
	case FilterMonth:
		start := startOfMonth(now)
		current = DateRange{Start: start, End: now}
		previous = DateRange{
			Start: start.AddDate(0, -1, 0),
			End:   start.Add(-time.Nanosecond),
		}
	default:
		// All-time: unbounded, every session passes.
	}
	return current, previous
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns midnight of the Monday on or before t.
func startOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -daysSinceMonday)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
