package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studywatch/studywatch/internal/config"
	"github.com/studywatch/studywatch/internal/importer"
	"github.com/studywatch/studywatch/internal/output"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import session history from export files",
	Long: `Import sessions from one or more Pomodoro export files. Files ending
in .jsonl are read line by line; any other file must hold a JSON array of
sessions. A parse failure in any file aborts the whole import; nothing is
written unless every file parses.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupOutput(cfg)

	sessions, err := importer.ParseFiles(args)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println(output.StyleMuted.Render("No sessions found in the given files."))
		return nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	count, err := db.InsertSessions(sessions)
	if err != nil {
		return fmt.Errorf("writing sessions: %w", err)
	}

	fmt.Printf(" %s Imported %d sessions from %d file(s)\n",
		output.StyleSuccess.Render("✓"), count, len(args))

	return nil
}
