// Package app contains the Cobra command tree for studywatch.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywatch/studywatch/internal/analytics"
	"github.com/studywatch/studywatch/internal/config"
	"github.com/studywatch/studywatch/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "studywatch",
	Short: "Study analytics for Pomodoro session history",
	Long: `studywatch turns a local history of Pomodoro sessions into study
analytics. It tracks study and break time per period, daily streaks, a
contribution calendar, and habit insights like your most productive
hours and go-to subject.

Run 'studywatch' with no arguments to see today's progress at a glance.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/studywatch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// runDashboard renders the quick summary shown when studywatch runs with no
// subcommand: today's study time against the daily goal, plus the streak.
func runDashboard(cmd *cobra.Command, args []string) error {
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
	today, _ := analytics.SelectRanges(analytics.FilterToday, now)
	summary := analytics.AggregatePeriod(sessions, today)
	streaks := analytics.ComputeStreaks(sessions, now)

	fmt.Println(output.Section("Today"))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Study time"),
		output.StyleValue.Render(formatMinutes(summary.TotalStudyTime)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Sessions"),
		output.StyleValue.Render(fmt.Sprintf("%d", summary.TotalStudySessions)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Daily goal"),
		output.GoalBar(summary.TotalStudyTime, cfg.DailyGoalMinutes, 20))

	fmt.Println(output.Section("Streak"))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Current"),
		output.StyleValue.Render(formatDays(streaks.Current)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Best"),
		output.StyleValue.Render(formatDays(streaks.Best)))

	fmt.Println()
	fmt.Println(output.StyleMuted.Render(" Run 'studywatch stats' for the full report."))
	fmt.Println()

	return nil
}
