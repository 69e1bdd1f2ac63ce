package analytics

import "time"

// minSessionsForProductiveHours is the smallest sample the hour-of-day
// heuristic will speak for.
const minSessionsForProductiveHours = 5

// ProductiveHours is the count-based peak study window. It reflects when
// study sessions are started most often, not where the most minutes land;
// PowerHour is the duration-weighted sibling.
type ProductiveHours struct {
	// StartHour and EndHour bound the inclusive hour-of-day range spanned
	// by the most frequent and second most frequent start hours.
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`

	// IsEarlyBird is true when the range starts between 5:00 and 17:59.
	IsEarlyBird bool `json:"is_early_bird"`
}

// HourStat is an hour-of-day with its summed study minutes.
type HourStat struct {
	Hour    int `json:"hour"`
	Minutes int `json:"minutes"`
}

// DayStat is a day of week with its summed study minutes.
type DayStat struct {
	Weekday time.Weekday `json:"weekday"`
	Minutes int          `json:"minutes"`
}

// SubjectStat is a per-subject rollup used by the subject deep-dive
// insights.
type SubjectStat struct {
	Subject        string  `json:"subject"`
	Sessions       int     `json:"sessions"`
	TotalMinutes   int     `json:"total_minutes"`
	AverageMinutes float64 `json:"average_minutes"`
}

// Insights is a family of independent best-effort statistics over all-time
// study history. Each field is nil when the data is too sparse to support
// it; nil means "not enough information", which is distinct from zero.
type Insights struct {
	ProductiveHours   *ProductiveHours `json:"productive_hours,omitempty"`
	PowerHour         *HourStat        `json:"power_hour,omitempty"`
	MostProductiveDay *DayStat         `json:"most_productive_day,omitempty"`
	GoToSubject       *SubjectStat     `json:"go_to_subject,omitempty"`
	EnduranceSubject  *SubjectStat     `json:"endurance_subject,omitempty"`
}

// ComputeInsights derives all insight statistics from all-time sessions.
// Only study sessions participate. Ties break deterministically: lowest
// hour, earliest weekday, lexicographically first subject.
func ComputeInsights(sessions []Session) Insights {
	var study []Session
	for _, s := range sessions {
		if s.IsStudy() {
			study = append(study, s)
		}
	}

	insights := Insights{
		ProductiveHours:   computeProductiveHours(study),
		PowerHour:         computePowerHour(study),
		MostProductiveDay: computeMostProductiveDay(study),
	}
	insights.GoToSubject, insights.EnduranceSubject = computeSubjectDeepDive(study)
	return insights
}

// computeProductiveHours finds the two hours of day in which study sessions
// start most frequently and reports the inclusive range between them. This
// is a count-based heuristic by design.
func computeProductiveHours(study []Session) *ProductiveHours {
	if len(study) < minSessionsForProductiveHours {
		return nil
	}

	var counts [24]int
	for _, s := range study {
		counts[s.StartedAt.Hour()]++
	}

	peak := maxHourByCount(counts, -1)
	second := maxHourByCount(counts, peak)
	if second == -1 {
		// Every session starts in the same hour.
		second = peak
	}

	start, end := peak, second
	if second < peak {
		start, end = second, peak
	}
	return &ProductiveHours{
		StartHour:   start,
		EndHour:     end,
		IsEarlyBird: start >= 5 && start < 18,
	}
}

// maxHourByCount returns the hour with the highest count, skipping the
// excluded hour and hours with no sessions. Returns -1 when every eligible
// hour is empty. Ties resolve to the lowest hour.
func maxHourByCount(counts [24]int, exclude int) int {
	best := -1
	for hour, count := range counts {
		if hour == exclude || count == 0 {
			continue
		}
		if best == -1 || count > counts[best] {
			best = hour
		}
	}
	return best
}

// computePowerHour finds the hour of day with the most total study minutes.
func computePowerHour(study []Session) *HourStat {
	if len(study) == 0 {
		return nil
	}

	var minutes [24]int
	for _, s := range study {
		minutes[s.StartedAt.Hour()] += s.DurationMinutes
	}

	best := 0
	for hour := 1; hour < 24; hour++ {
		if minutes[hour] > minutes[best] {
			best = hour
		}
	}
	return &HourStat{Hour: best, Minutes: minutes[best]}
}

// computeMostProductiveDay finds the day of week with the most total study
// minutes across all history.
func computeMostProductiveDay(study []Session) *DayStat {
	if len(study) == 0 {
		return nil
	}

	var minutes [7]int
	for _, s := range study {
		minutes[s.StartedAt.Weekday()] += s.DurationMinutes
	}

	best := 0
	for day := 1; day < 7; day++ {
		if minutes[day] > minutes[best] {
			best = day
		}
	}
	return &DayStat{Weekday: time.Weekday(best), Minutes: minutes[best]}
}

// computeSubjectDeepDive returns the go-to subject (most sessions) and the
// endurance subject (highest average session length). The two optimize
// different quantities and may name different subjects.
func computeSubjectDeepDive(study []Session) (goTo, endurance *SubjectStat) {
	if len(study) == 0 {
		return nil, nil
	}

	stats := make(map[string]*SubjectStat)
	for _, s := range study {
		label := s.SubjectLabel()
		st, ok := stats[label]
		if !ok {
			st = &SubjectStat{Subject: label}
			stats[label] = st
		}
		st.Sessions++
		st.TotalMinutes += s.DurationMinutes
	}
	for _, st := range stats {
		st.AverageMinutes = float64(st.TotalMinutes) / float64(st.Sessions)
	}

	for _, st := range stats {
		if goTo == nil ||
			st.Sessions > goTo.Sessions ||
			(st.Sessions == goTo.Sessions && st.Subject < goTo.Subject) {
			goTo = st
		}
		if endurance == nil ||
			st.AverageMinutes > endurance.AverageMinutes ||
			(st.AverageMinutes == endurance.AverageMinutes && st.Subject < endurance.Subject) {
			endurance = st
		}
	}
	return goTo, endurance
}
