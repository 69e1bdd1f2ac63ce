package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studywatch/studywatch/internal/config"
	"github.com/studywatch/studywatch/internal/output"
)

var (
	sessionsLimit  int
	sessionsDelete int64
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions",
	Long: `List the most recently recorded sessions, newest first. Use --delete
to remove a session by its ID.`,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "Maximum number of sessions to show")
	sessionsCmd.Flags().Int64Var(&sessionsDelete, "delete", 0, "Delete the session with this ID")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
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

	if sessionsDelete != 0 {
		if err := db.DeleteSession(sessionsDelete); err != nil {
			return fmt.Errorf("deleting session: %w", err)
		}
		fmt.Printf(" %s Deleted session #%d\n",
			output.StyleSuccess.Render("✓"), sessionsDelete)
		return nil
	}

	sessions, err := db.RecentSessions(sessionsLimit)
	if err != nil {
		return fmt.Errorf("reading sessions: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sessions)
	}

	if len(sessions) == 0 {
		fmt.Println(output.StyleMuted.Render("No sessions recorded yet. Use 'studywatch log' to add one."))
		return nil
	}

	tbl := output.NewTable("ID", "Started", "Type", "Duration", "Subject")
	tbl.AlignRight(0, 3)
	for _, s := range sessions {
		tbl.AddRow(
			fmt.Sprintf("%d", s.ID),
			s.StartedAt.Format("2006-01-02 15:04"),
			string(s.Type),
			formatMinutes(s.DurationMinutes),
			s.SubjectLabel(),
		)
	}
	fmt.Println(tbl.Render())

	return nil
}
