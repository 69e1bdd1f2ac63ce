package analytics

import "sort"

// ContributionDay is one calendar day with at least one study session.
type ContributionDay struct {
	// Date is the day key, e.g. "2026-03-14".
	Date string `json:"date"`

	// Minutes is the summed study time for the day.
	Minutes int `json:"minutes"`
}

// Contribution is the heat-map input for one year: a sparse day list plus
// the year total. Days without sessions are omitted; the rendering layer
// fills gaps as zero.
type Contribution struct {
	Year         int               `json:"year"`
	Days         []ContributionDay `json:"days"`
	TotalMinutes int               `json:"total_minutes"`
}

// BuildContribution buckets study sessions from the target year by calendar
// day. Days are returned in chronological order.
func BuildContribution(sessions []Session, year int) Contribution {
	byDay := make(map[string]int)
	total := 0

	for _, s := range sessions {
		if !s.IsStudy() || s.StartedAt.Year() != year {
			continue
		}
		byDay[dayKey(s.StartedAt)] += s.DurationMinutes
		total += s.DurationMinutes
	}

	days := make([]ContributionDay, 0, len(byDay))
	for date, minutes := range byDay {
		days = append(days, ContributionDay{Date: date, Minutes: minutes})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return Contribution{Year: year, Days: days, TotalMinutes: total}
}
