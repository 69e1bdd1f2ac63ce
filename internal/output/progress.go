package output

import (
	"fmt"
	"strings"
)

// GoalBar renders a visual progress bar for study minutes against a goal.
// Example: "████████░░ 96/120m"
func GoalBar(minutes, goal, width int) string {
	if width <= 0 {
		width = 20
	}
	if goal <= 0 {
		goal = 1
	}

	ratio := float64(minutes) / float64(goal)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case ratio >= 1:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case ratio >= 0.5:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%d/%dm", minutes, goal)))
}

// TrendArrowPercent returns a styled trend indicator for a percentage delta
// against the previous period. Positive deltas show an up arrow, negative
// show down, zero shows a dash. The higherIsBetter parameter controls which
// direction renders green.
func TrendArrowPercent(delta float64, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}

	isPositive := delta > 0
	isImproved := (isPositive && higherIsBetter) || (!isPositive && !higherIsBetter)

	var arrow string
	if isPositive {
		arrow = fmt.Sprintf("▲ +%.0f%%", delta)
	} else {
		arrow = fmt.Sprintf("▼ %.0f%%", delta)
	}

	if isImproved {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
