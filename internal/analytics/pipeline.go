package analytics

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// Report is the combined output of one analytics run.
type Report struct {
	Filter           TimeFilter    `json:"filter"`
	GeneratedAt      time.Time     `json:"generated_at"`
	ContributionYear int           `json:"contribution_year"`
	Current          PeriodSummary `json:"current"`
	Previous         PeriodSummary `json:"previous"`
	Streaks          Streaks       `json:"streaks"`
	Contribution     Contribution  `json:"contribution"`
	Insights         Insights      `json:"insights"`
}

// Compute runs the full pipeline over the session list: period aggregation
// for the filter's current and previous ranges, streaks, the contribution
// calendar for the given year, and the insight calculators. now anchors the
// date-range selection and the current streak.
//
// Compute is deterministic: the same sessions, filter, year, and now always
// produce the same report.
func Compute(sessions []Session, filter TimeFilter, year int, now time.Time) Report {
	current, previous := SelectRanges(filter, now)

	report := Report{
		Filter:           filter,
		GeneratedAt:      now,
		ContributionYear: year,
	}

	// The all-time calculators are pure and independent of each other and
	// of the period summaries, so they can run concurrently.
	g := new(errgroup.Group)
	g.Go(func() error {
		report.Current = AggregatePeriod(sessions, current)
		report.Previous = AggregatePeriod(sessions, previous)
		return nil
	})
	g.Go(func() error {
		report.Streaks = ComputeStreaks(sessions, now)
		return nil
	})
	g.Go(func() error {
		report.Contribution = BuildContribution(sessions, year)
		return nil
	})
	g.Go(func() error {
		report.Insights = ComputeInsights(sessions)
		return nil
	})
	// The calculators never fail; Wait only joins the goroutines.
	_ = g.Wait()

	return report
}
