package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywatch/studywatch/internal/analytics"
	"github.com/studywatch/studywatch/internal/config"
	"github.com/studywatch/studywatch/internal/output"
)

var (
	statsFilter string
	statsYear   int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the full study analytics report",
	Long: `Compute and display the full analytics report: study and break totals
for the selected period with a comparison against the previous period,
time per subject, streaks, the contribution calendar summary, and habit
insights.

Valid --filter values are today, week, month, and all-time.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsFilter, "filter", "", "Period filter: today, week, month, all-time (default from config)")
	statsCmd.Flags().IntVar(&statsYear, "year", 0, "Contribution calendar year (default: current year)")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
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

	now := time.Now()

	filterStr := statsFilter
	if filterStr == "" {
		filterStr = cfg.DefaultFilter
	}
	filter := analytics.ParseTimeFilter(filterStr)

	year := statsYear
	if year == 0 {
		year = now.Year()
	}

	report := analytics.Compute(sessions, filter, year, now)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	renderStudyTime(report)
	renderSubjects(report.Current)
	renderStreaks(report.Streaks)
	renderContributionSummary(report.Contribution)
	renderInsights(report.Insights)

	return nil
}

func renderStudyTime(r analytics.Report) {
	fmt.Println(output.Section(fmt.Sprintf("Study Time (%s)", r.Filter)))

	trend := ""
	if delta, ok := percentChange(r.Current.TotalStudyTime, r.Previous.TotalStudyTime); ok {
		trend = output.TrendArrowPercent(delta, true)
	}

	fmt.Printf(" %s %s %s\n",
		output.StyleLabel.Render("Study time"),
		output.StyleValue.Render(formatMinutes(r.Current.TotalStudyTime)),
		trend)
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Study sessions"),
		output.StyleValue.Render(fmt.Sprintf("%d", r.Current.TotalStudySessions)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Avg session"),
		output.StyleValue.Render(fmt.Sprintf("%.0f min", r.Current.AverageSessionLength)))
	fmt.Printf(" %s %s %s\n",
		output.StyleLabel.Render("Break time"),
		output.StyleValue.Render(formatMinutes(r.Current.TotalBreakTime)),
		output.StyleMuted.Render(fmt.Sprintf("(short %s, long %s)",
			formatMinutes(r.Current.TotalShortBreakTime),
			formatMinutes(r.Current.TotalLongBreakTime))))

	fmt.Println()
}

func renderSubjects(summary analytics.PeriodSummary) {
	fmt.Println(output.Section("Subjects"))

	if len(summary.TimePerSubject) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No study sessions in this period"))
		return
	}

	tbl := output.NewTable("Subject", "Time", "Share")
	tbl.AlignRight(1, 2)
	for _, st := range summary.TimePerSubject {
		share := float64(st.Minutes) / float64(summary.TotalStudyTime) * 100
		tbl.AddRow(st.Subject, formatMinutes(st.Minutes), fmt.Sprintf("%.0f%%", share))
	}
	fmt.Println(tbl.Render())
}

func renderStreaks(s analytics.Streaks) {
	fmt.Println(output.Section("Streak"))

	current := output.StyleValue.Render(formatDays(s.Current))
	if s.Current > 0 {
		current = output.StyleSuccess.Render(formatDays(s.Current))
	}
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Current"),
		current)
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Best"),
		output.StyleValue.Render(formatDays(s.Best)))

	fmt.Println()
}

func renderContributionSummary(c analytics.Contribution) {
	fmt.Println(output.Section(fmt.Sprintf("Contribution %d", c.Year)))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Active days"),
		output.StyleValue.Render(fmt.Sprintf("%d", len(c.Days))))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Total study time"),
		output.StyleValue.Render(formatMinutes(c.TotalMinutes)))
	fmt.Printf(" %s\n",
		output.StyleMuted.Render("Run 'studywatch heatmap' for the full calendar."))

	fmt.Println()
}

func renderInsights(ins analytics.Insights) {
	fmt.Println(output.Section("Insights"))

	shown := false

	if ph := ins.ProductiveHours; ph != nil {
		persona := "night owl"
		if ph.IsEarlyBird {
			persona = "early bird"
		}
		fmt.Printf(" %s %s %s\n",
			output.StyleLabel.Render("Productive hours"),
			output.StyleValue.Render(fmt.Sprintf("%02d:00-%02d:59", ph.StartHour, ph.EndHour)),
			output.StyleMuted.Render(fmt.Sprintf("(%s)", persona)))
		shown = true
	}

	if p := ins.PowerHour; p != nil {
		fmt.Printf(" %s %s %s\n",
			output.StyleLabel.Render("Power hour"),
			output.StyleValue.Render(fmt.Sprintf("%02d:00", p.Hour)),
			output.StyleMuted.Render(fmt.Sprintf("(%s studied)", formatMinutes(p.Minutes))))
		shown = true
	}

	if d := ins.MostProductiveDay; d != nil {
		fmt.Printf(" %s %s %s\n",
			output.StyleLabel.Render("Best day"),
			output.StyleValue.Render(d.Weekday.String()),
			output.StyleMuted.Render(fmt.Sprintf("(%s total)", formatMinutes(d.Minutes))))
		shown = true
	}

	if s := ins.GoToSubject; s != nil {
		fmt.Printf(" %s %s %s\n",
			output.StyleLabel.Render("Go-to subject"),
			output.StyleValue.Render(s.Subject),
			output.StyleMuted.Render(fmt.Sprintf("(%d sessions)", s.Sessions)))
		shown = true
	}

	if s := ins.EnduranceSubject; s != nil {
		fmt.Printf(" %s %s %s\n",
			output.StyleLabel.Render("Endurance subject"),
			output.StyleValue.Render(s.Subject),
			output.StyleMuted.Render(fmt.Sprintf("(%.0f min avg)", s.AverageMinutes)))
		shown = true
	}

	if !shown {
		fmt.Printf(" %s\n", output.StyleMuted.Render("Not enough history yet"))
	}

	fmt.Println()
}
