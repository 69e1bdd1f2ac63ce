package analytics

import (
	"testing"
	"time"
)

func TestParseTimeFilter(t *testing.T) {
	tests := []struct {
		input string
		want  TimeFilter
	}{
		{"today", FilterToday},
		{"week", FilterWeek},
		{"month", FilterMonth},
		{"all-time", FilterAllTime},
		{"", FilterAllTime},
		{"fortnight", FilterAllTime},
	}

	for _, tc := range tests {
		if got := ParseTimeFilter(tc.input); got != tc.want {
			t.Errorf("ParseTimeFilter(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestSelectRanges_Today(t *testing.T) {
	now := mustTime(t, "2026-03-14T15:30:00")
	current, previous := SelectRanges(FilterToday, now)

	if got := current.Start.Format("2006-01-02 15:04:05"); got != "2026-03-14 00:00:00" {
		t.Errorf("current start = %s", got)
	}
	if !current.End.Equal(now) {
		t.Errorf("current end = %v, want now", current.End)
	}
	if got := previous.Start.Format("2006-01-02 15:04:05"); got != "2026-03-13 00:00:00" {
		t.Errorf("previous start = %s", got)
	}
	if !previous.End.Before(current.Start) {
		t.Error("previous end should precede current start")
	}
	if previous.End.Format("2006-01-02") != "2026-03-13" {
		t.Errorf("previous end day = %s, want 2026-03-13", previous.End.Format("2006-01-02"))
	}
}

func TestSelectRanges_WeekStartsMonday(t *testing.T) {
	// 2026-03-14 is a Saturday; the week began Monday 2026-03-09.
	now := mustTime(t, "2026-03-14T12:00:00")
	current, previous := SelectRanges(FilterWeek, now)

	if got := current.Start.Format("2006-01-02"); got != "2026-03-09" {
		t.Errorf("week start = %s, want 2026-03-09", got)
	}
	if current.Start.Weekday() != time.Monday {
		t.Errorf("week start weekday = %v, want Monday", current.Start.Weekday())
	}
	if got := previous.Start.Format("2006-01-02"); got != "2026-03-02" {
		t.Errorf("previous week start = %s, want 2026-03-02", got)
	}
}

func TestSelectRanges_WeekOnMonday(t *testing.T) {
	// Already Monday: the week starts today.
	now := mustTime(t, "2026-03-09T08:00:00")
	current, _ := SelectRanges(FilterWeek, now)
	if got := current.Start.Format("2006-01-02"); got != "2026-03-09" {
		t.Errorf("week start = %s, want 2026-03-09", got)
	}
}

func TestSelectRanges_Month(t *testing.T) {
	now := mustTime(t, "2026-03-14T12:00:00")
	current, previous := SelectRanges(FilterMonth, now)

	if got := current.Start.Format("2006-01-02"); got != "2026-03-01" {
		t.Errorf("month start = %s, want 2026-03-01", got)
	}
	if got := previous.Start.Format("2006-01-02"); got != "2026-02-01" {
		t.Errorf("previous month start = %s, want 2026-02-01", got)
	}
	if got := previous.End.Format("2006-01-02"); got != "2026-02-28" {
		t.Errorf("previous month end day = %s, want 2026-02-28", got)
	}
}

func TestSelectRanges_AllTimeUnbounded(t *testing.T) {
	now := mustTime(t, "2026-03-14T12:00:00")
	current, previous := SelectRanges(FilterAllTime, now)

	if !current.Start.IsZero() || !current.End.IsZero() {
		t.Error("all-time current range should be unbounded")
	}
	if !previous.Start.IsZero() || !previous.End.IsZero() {
		t.Error("all-time previous range should be unbounded")
	}

	ancient := mustTime(t, "1999-01-01T00:00:00")
	if !current.Contains(ancient) {
		t.Error("unbounded range should contain any time")
	}
}

func TestDateRange_ContainsInclusiveBounds(t *testing.T) {
	r := DateRange{
		Start: mustTime(t, "2026-03-01T00:00:00"),
		End:   mustTime(t, "2026-03-02T00:00:00"),
	}

	if !r.Contains(r.Start) {
		t.Error("range should include its start instant")
	}
	if !r.Contains(r.End) {
		t.Error("range should include its end instant")
	}
	if r.Contains(r.Start.Add(-time.Second)) {
		t.Error("range should exclude times before start")
	}
	if r.Contains(r.End.Add(time.Second)) {
		t.Error("range should exclude times after end")
	}
}

// mustTime parses a local datetime string for test fixtures.
func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		t.Fatalf("bad test time %q: %v", s, err)
	}
	return ts
}
