package analytics

import (
	"testing"
	"time"
)

func TestComputeInsights_Empty(t *testing.T) {
	insights := ComputeInsights(nil)
	if insights.ProductiveHours != nil {
		t.Error("expected nil productive hours for empty input")
	}
	if insights.PowerHour != nil {
		t.Error("expected nil power hour for empty input")
	}
	if insights.MostProductiveDay != nil {
		t.Error("expected nil most productive day for empty input")
	}
	if insights.GoToSubject != nil || insights.EnduranceSubject != nil {
		t.Error("expected nil subject insights for empty input")
	}
}

func TestProductiveHours_RequiresMinimumSessions(t *testing.T) {
	// Four study sessions: one short of the minimum.
	sessions := []Session{
		study(t, "2026-03-10T09:00:00", 25, ""),
		study(t, "2026-03-11T09:00:00", 25, ""),
		study(t, "2026-03-12T09:00:00", 25, ""),
		study(t, "2026-03-13T09:00:00", 25, ""),
	}

	insights := ComputeInsights(sessions)
	if insights.ProductiveHours != nil {
		t.Error("expected nil productive hours below the session minimum")
	}
	// The other insights do not share that minimum.
	if insights.PowerHour == nil {
		t.Error("expected power hour despite the small sample")
	}
}

func TestProductiveHours_CountBasedPeaks(t *testing.T) {
	// Hour 9 has three short sessions, hour 14 two, hour 20 one long one.
	// The count-based range must be 9-14 even though hour 20 has the most
	// minutes.
	sessions := []Session{
		study(t, "2026-03-10T09:00:00", 10, ""),
		study(t, "2026-03-11T09:15:00", 10, ""),
		study(t, "2026-03-12T09:30:00", 10, ""),
		study(t, "2026-03-10T14:00:00", 10, ""),
		study(t, "2026-03-11T14:30:00", 10, ""),
		study(t, "2026-03-12T20:00:00", 120, ""),
	}

	insights := ComputeInsights(sessions)
	ph := insights.ProductiveHours
	if ph == nil {
		t.Fatal("expected productive hours")
	}
	if ph.StartHour != 9 || ph.EndHour != 14 {
		t.Errorf("range = [%d, %d], want [9, 14]", ph.StartHour, ph.EndHour)
	}
	if !ph.IsEarlyBird {
		t.Error("range starting at 9 should be early bird")
	}
}

func TestProductiveHours_NightOwl(t *testing.T) {
	sessions := []Session{
		study(t, "2026-03-10T22:00:00", 25, ""),
		study(t, "2026-03-11T22:00:00", 25, ""),
		study(t, "2026-03-12T22:00:00", 25, ""),
		study(t, "2026-03-10T23:00:00", 25, ""),
		study(t, "2026-03-11T23:00:00", 25, ""),
	}

	ph := ComputeInsights(sessions).ProductiveHours
	if ph == nil {
		t.Fatal("expected productive hours")
	}
	if ph.StartHour != 22 || ph.EndHour != 23 {
		t.Errorf("range = [%d, %d], want [22, 23]", ph.StartHour, ph.EndHour)
	}
	if ph.IsEarlyBird {
		t.Error("22:00 start should not be early bird")
	}
}

func TestProductiveHours_SingleHourCollapsesRange(t *testing.T) {
	var sessions []Session
	for i := 0; i < 5; i++ {
		sessions = append(sessions, study(t, "2026-03-10T10:00:00", 25, ""))
	}

	ph := ComputeInsights(sessions).ProductiveHours
	if ph == nil {
		t.Fatal("expected productive hours")
	}
	if ph.StartHour != 10 || ph.EndHour != 10 {
		t.Errorf("range = [%d, %d], want [10, 10]", ph.StartHour, ph.EndHour)
	}
}

func TestPowerHour_DurationWeighted(t *testing.T) {
	// Hour 9 has more sessions, hour 20 has more minutes.
	sessions := []Session{
		study(t, "2026-03-10T09:00:00", 10, ""),
		study(t, "2026-03-11T09:00:00", 10, ""),
		study(t, "2026-03-12T20:00:00", 90, ""),
	}

	power := ComputeInsights(sessions).PowerHour
	if power == nil {
		t.Fatal("expected power hour")
	}
	if power.Hour != 20 || power.Minutes != 90 {
		t.Errorf("power hour = %+v, want hour 20 with 90 minutes", power)
	}
}

func TestMostProductiveDay(t *testing.T) {
	// 2026-03-09 is a Monday, 2026-03-14 a Saturday.
	sessions := []Session{
		study(t, "2026-03-09T09:00:00", 30, ""),
		study(t, "2026-03-14T09:00:00", 60, ""),
		study(t, "2026-03-14T14:00:00", 30, ""),
	}

	day := ComputeInsights(sessions).MostProductiveDay
	if day == nil {
		t.Fatal("expected most productive day")
	}
	if day.Weekday != time.Saturday {
		t.Errorf("weekday = %v, want Saturday", day.Weekday)
	}
	if day.Minutes != 90 {
		t.Errorf("minutes = %d, want 90", day.Minutes)
	}
}

func TestSubjectDeepDive_DifferentWinners(t *testing.T) {
	// Math: 3 sessions of 10 minutes. Physics: 1 session of 90 minutes.
	// Go-to subject is Math (by count); endurance subject is Physics
	// (by average length).
	sessions := []Session{
		study(t, "2026-03-10T09:00:00", 10, "Math"),
		study(t, "2026-03-11T09:00:00", 10, "Math"),
		study(t, "2026-03-12T09:00:00", 10, "Math"),
		study(t, "2026-03-13T09:00:00", 90, "Physics"),
	}

	insights := ComputeInsights(sessions)
	if insights.GoToSubject == nil || insights.GoToSubject.Subject != "Math" {
		t.Errorf("go-to subject = %+v, want Math", insights.GoToSubject)
	}
	if insights.EnduranceSubject == nil || insights.EnduranceSubject.Subject != "Physics" {
		t.Errorf("endurance subject = %+v, want Physics", insights.EnduranceSubject)
	}
	if insights.EnduranceSubject.AverageMinutes != 90 {
		t.Errorf("endurance average = %f, want 90", insights.EnduranceSubject.AverageMinutes)
	}
}

func TestSubjectDeepDive_TieBreaksLexicographically(t *testing.T) {
	sessions := []Session{
		study(t, "2026-03-10T09:00:00", 30, "Zoology"),
		study(t, "2026-03-11T09:00:00", 30, "Algebra"),
	}

	insights := ComputeInsights(sessions)
	if insights.GoToSubject.Subject != "Algebra" {
		t.Errorf("go-to tie should pick %q, got %q", "Algebra", insights.GoToSubject.Subject)
	}
	if insights.EnduranceSubject.Subject != "Algebra" {
		t.Errorf("endurance tie should pick %q, got %q", "Algebra", insights.EnduranceSubject.Subject)
	}
}

func TestComputeInsights_BreaksExcluded(t *testing.T) {
	sessions := []Session{
		breakSession(t, "2026-03-10T09:00:00", 5, false),
		breakSession(t, "2026-03-11T09:00:00", 15, true),
	}

	insights := ComputeInsights(sessions)
	if insights.PowerHour != nil || insights.GoToSubject != nil {
		t.Error("break-only history should produce no insights")
	}
}
