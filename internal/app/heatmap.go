package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywatch/studywatch/internal/analytics"
	"github.com/studywatch/studywatch/internal/config"
	"github.com/studywatch/studywatch/internal/output"
)

var heatmapYear int

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Show the contribution calendar for a year",
	Long: `Render a contribution-style calendar of daily study minutes for a
calendar year. Each cell's shade reflects how much study time that day
holds relative to the year's busiest day.`,
	RunE: runHeatmap,
}

func init() {
	heatmapCmd.Flags().IntVar(&heatmapYear, "year", 0, "Calendar year (default: current year)")
	rootCmd.AddCommand(heatmapCmd)
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupOutput(cfg)

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := db.ListSessions()
	if err != nil {
		return fmt.Errorf("reading sessions: %w", err)
	}

	year := heatmapYear
	if year == 0 {
		year = time.Now().Year()
	}

	contribution := analytics.BuildContribution(sessions, year)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(contribution)
	}

	fmt.Println(output.Section(fmt.Sprintf("Study Calendar %d", year)))
	fmt.Println()
	fmt.Print(renderCalendar(contribution))
	fmt.Println()
	fmt.Printf(" %s %s across %d active days\n\n",
		output.StyleLabel.Render("Total"),
		output.StyleValue.Render(formatMinutes(contribution.TotalMinutes)),
		len(contribution.Days))

	return nil
}

// renderCalendar lays the year out as a grid of week columns and weekday
// rows, Monday at the top.
func renderCalendar(c analytics.Contribution) string {
	minutes := make(map[string]int, len(c.Days))
	max := 0
	for _, d := range c.Days {
		minutes[d.Date] = d.Minutes
		if d.Minutes > max {
			max = d.Minutes
		}
	}

	jan1 := time.Date(c.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	dec31 := time.Date(c.Year, time.December, 31, 0, 0, 0, 0, time.UTC)

	// The grid starts on the Monday on or before January 1.
	gridStart := jan1.AddDate(0, 0, -((int(jan1.Weekday()) + 6) % 7))
	weeks := int(dec31.Sub(gridStart).Hours()/24/7) + 1

	rowLabels := []string{"Mon", "   ", "Wed", "   ", "Fri", "   ", "Sun"}

	var sb strings.Builder
	for row := 0; row < 7; row++ {
		sb.WriteString(" ")
		sb.WriteString(output.StyleMuted.Render(rowLabels[row]))
		sb.WriteString(" ")
		for week := 0; week < weeks; week++ {
			day := gridStart.AddDate(0, 0, week*7+row)
			if day.Before(jan1) || day.After(dec31) {
				sb.WriteString("  ")
				continue
			}
			level := heatLevel(minutes[day.Format("2006-01-02")], max)
			sb.WriteString(output.HeatCell(level))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// heatLevel buckets a day's minutes into an intensity level relative to the
// busiest day. Zero minutes is always level 0; any study time is at least
// level 1.
func heatLevel(minutes, max int) int {
	if minutes <= 0 || max <= 0 {
		return 0
	}
	levels := output.HeatLevels() - 1
	level := minutes * levels / max
	if level < 1 {
		level = 1
	}
	return level
}
