package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studywatch/studywatch/internal/analytics"
	"github.com/studywatch/studywatch/internal/config"
	"github.com/studywatch/studywatch/internal/output"
	"github.com/studywatch/studywatch/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the studywatch setup is healthy",
	Long: `Run a series of health checks against your studywatch configuration
and session database. Prints a pass/fail line for each check and a
summary of how many checks passed.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is the JSON-serializable result of the doctor command.
type doctorOutput struct {
	Checks      []doctorCheck `json:"checks"`
	PassedCount int           `json:"passed"`
	TotalCount  int           `json:"total"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupOutput(cfg)

	var checks []doctorCheck

	// 1. Config directory — exists and is a directory.
	checks = append(checks, checkConfigDir())

	// 2. Database — opens and migrates cleanly.
	checks = append(checks, checkDatabase(cfg))

	// 3. Session data — at least one session recorded.
	checks = append(checks, checkSessionData(cfg))

	// 4. Default filter — a recognized period filter.
	checks = append(checks, checkDefaultFilter(cfg))

	// 5. Daily goal — a positive minute target.
	checks = append(checks, checkDailyGoal(cfg))

	// Count passes.
	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	if flagJSON {
		out := doctorOutput{
			Checks:      checks,
			PassedCount: passed,
			TotalCount:  len(checks),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	// Render styled output.
	fmt.Println(output.Section("Doctor"))
	fmt.Println()

	for _, c := range checks {
		renderDoctorCheck(c)
	}

	fmt.Println()
	summary := fmt.Sprintf("%d/%d checks passed", passed, len(checks))
	if passed == len(checks) {
		fmt.Printf(" %s\n\n", output.StyleSuccess.Render(summary))
	} else {
		fmt.Printf(" %s\n\n", output.StyleWarning.Render(summary))
	}

	return nil
}

// renderDoctorCheck prints a single check result line.
func renderDoctorCheck(c doctorCheck) {
	var indicator string
	if c.Passed {
		indicator = output.StyleSuccess.Render("✓")
	} else {
		indicator = output.StyleWarning.Render("✗")
	}
	label := output.StyleBold.Render(c.Name)
	detail := output.StyleMuted.Render(c.Message)
	fmt.Printf("  %s  %-30s %s\n", indicator, label, detail)
}

// checkConfigDir verifies that the config directory exists and is a directory.
func checkConfigDir() doctorCheck {
	dir := config.ConfigDir()
	info, err := os.Stat(dir)
	if err != nil {
		return doctorCheck{
			Name:    "Config directory",
			Passed:  false,
			Message: fmt.Sprintf("not found: %s (created on first 'studywatch log')", dir),
		}
	}
	if !info.IsDir() {
		return doctorCheck{
			Name:    "Config directory",
			Passed:  false,
			Message: fmt.Sprintf("path exists but is not a directory: %s", dir),
		}
	}
	return doctorCheck{
		Name:    "Config directory",
		Passed:  true,
		Message: dir,
	}
}

// checkDatabase verifies that the session database opens and migrates.
func checkDatabase(cfg *config.Config) doctorCheck {
	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return doctorCheck{
			Name:    "Session database",
			Passed:  false,
			Message: fmt.Sprintf("cannot open: %v", err),
		}
	}
	defer db.Close()

	return doctorCheck{
		Name:    "Session database",
		Passed:  true,
		Message: cfg.DBPath(),
	}
}

// checkSessionData verifies that at least one session has been recorded.
func checkSessionData(cfg *config.Config) doctorCheck {
	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return doctorCheck{
			Name:    "Session data",
			Passed:  false,
			Message: fmt.Sprintf("cannot open database: %v", err),
		}
	}
	defer db.Close()

	count, err := db.CountSessions()
	if err != nil {
		return doctorCheck{
			Name:    "Session data",
			Passed:  false,
			Message: fmt.Sprintf("cannot count sessions: %v", err),
		}
	}
	if count == 0 {
		return doctorCheck{
			Name:    "Session data",
			Passed:  false,
			Message: "no sessions recorded (use 'studywatch log' or 'studywatch import')",
		}
	}
	return doctorCheck{
		Name:    "Session data",
		Passed:  true,
		Message: fmt.Sprintf("%d sessions recorded", count),
	}
}

// checkDefaultFilter verifies that the configured default filter is known.
func checkDefaultFilter(cfg *config.Config) doctorCheck {
	parsed := analytics.ParseTimeFilter(cfg.DefaultFilter)
	if string(parsed) != cfg.DefaultFilter {
		return doctorCheck{
			Name:    "Default filter",
			Passed:  false,
			Message: fmt.Sprintf("unknown filter %q, falling back to all-time", cfg.DefaultFilter),
		}
	}
	return doctorCheck{
		Name:    "Default filter",
		Passed:  true,
		Message: cfg.DefaultFilter,
	}
}

// checkDailyGoal verifies that the daily goal is positive.
func checkDailyGoal(cfg *config.Config) doctorCheck {
	if cfg.DailyGoalMinutes <= 0 {
		return doctorCheck{
			Name:    "Daily goal",
			Passed:  false,
			Message: fmt.Sprintf("daily_goal_minutes is %d, expected a positive target", cfg.DailyGoalMinutes),
		}
	}
	return doctorCheck{
		Name:    "Daily goal",
		Passed:  true,
		Message: formatMinutes(cfg.DailyGoalMinutes),
	}
}
