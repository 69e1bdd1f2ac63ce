package analytics

import "sort"

// subjectPalette assigns display colors to subjects by rank, cycling when
// there are more subjects than colors.
var subjectPalette = []string{
	"#64b5f6", // blue
	"#66bb6a", // green
	"#ffb74d", // orange
	"#ba68c8", // purple
	"#4dd0e1", // cyan
	"#f06292", // pink
	"#aed581", // light green
	"#ff8a65", // coral
}

// SubjectTotal is the summed study time for one subject within a period.
type SubjectTotal struct {
	Subject string `json:"subject"`
	Minutes int    `json:"minutes"`
	Color   string `json:"color"`
}

// PeriodSummary holds the aggregate totals for one period.
type PeriodSummary struct {
	// TotalStudyTime is the summed study minutes in the period.
	TotalStudyTime int `json:"total_study_time"`

	// TotalStudySessions is the count of study sessions in the period.
	TotalStudySessions int `json:"total_study_sessions"`

	// TotalBreakTime is the summed minutes of all breaks.
	TotalBreakTime int `json:"total_break_time"`

	// TotalShortBreakTime is the summed minutes of short breaks only.
	TotalShortBreakTime int `json:"total_short_break_time"`

	// TotalLongBreakTime is the summed minutes of long breaks only.
	TotalLongBreakTime int `json:"total_long_break_time"`

	// AverageSessionLength is TotalStudyTime / TotalStudySessions, or 0
	// when the period has no study sessions.
	AverageSessionLength float64 `json:"average_session_length"`

	// TimePerSubject lists study minutes per subject, sorted by minutes
	// descending (ties break on subject name ascending). Subject minutes
	// always sum to TotalStudyTime.
	TimePerSubject []SubjectTotal `json:"time_per_subject"`
}

// AggregatePeriod reduces the sessions falling within the range into period
// totals. It is a pure function: summation is commutative, so the result is
// independent of input order.
func AggregatePeriod(sessions []Session, r DateRange) PeriodSummary {
	var summary PeriodSummary
	bySubject := make(map[string]int)

	for _, s := range sessions {
		if !r.Contains(s.StartedAt) {
			continue
		}
		switch s.Type {
		case SessionStudy:
			summary.TotalStudyTime += s.DurationMinutes
			summary.TotalStudySessions++
			bySubject[s.SubjectLabel()] += s.DurationMinutes
		case SessionShortBreak:
			summary.TotalBreakTime += s.DurationMinutes
			summary.TotalShortBreakTime += s.DurationMinutes
		case SessionLongBreak:
			summary.TotalBreakTime += s.DurationMinutes
			summary.TotalLongBreakTime += s.DurationMinutes
		}
	}

	// Derived after the full pass so an empty period stays at zero.
	if summary.TotalStudySessions > 0 {
		summary.AverageSessionLength = float64(summary.TotalStudyTime) / float64(summary.TotalStudySessions)
	}

	summary.TimePerSubject = rankSubjects(bySubject)
	return summary
}

// rankSubjects orders subject totals by minutes descending and assigns each
// a palette color by rank.
func rankSubjects(bySubject map[string]int) []SubjectTotal {
	if len(bySubject) == 0 {
		return nil
	}

	totals := make([]SubjectTotal, 0, len(bySubject))
	for subject, minutes := range bySubject {
		totals = append(totals, SubjectTotal{Subject: subject, Minutes: minutes})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Minutes != totals[j].Minutes {
			return totals[i].Minutes > totals[j].Minutes
		}
		return totals[i].Subject < totals[j].Subject
	})

	for i := range totals {
		totals[i].Color = subjectPalette[i%len(subjectPalette)]
	}
	return totals
}
