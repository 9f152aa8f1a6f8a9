package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the working cube and any active session",
	Long:  `Display the working cube state, solving progress, database info, and any active recorded session.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	stateFile, err := openStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	fmt.Println("Pocket Cube Status")
	fmt.Println("==================")
	fmt.Println()

	fmt.Printf("State file: %s\n", stateFile.Path())

	// Database info
	path := getDBPath()
	if path == "" {
		defaultPath, _ := storage.DefaultDBPath()
		path = defaultPath
	}

	db, err := storage.Open(path)
	if err != nil {
		fmt.Printf("Database: %s (unavailable)\n", path)
	} else {
		defer db.Close()
		fmt.Printf("Database: %s\n", db.Path())

		if err := db.MigrateUp(); err == nil {
			if version, err := db.CurrentVersion(); err == nil {
				fmt.Printf("Schema version: %d\n", version)
			}

			sessionRepo := storage.NewSessionRepository(db)
			last, _ := sessionRepo.GetLast()
			if last != nil {
				fmt.Printf("Last session: %s\n", last.StartedAt.Format(time.RFC3339))
			}

			sessions, _ := sessionRepo.List(10000)
			fmt.Printf("Total sessions: %d\n", len(sessions))
		}
	}

	fmt.Println()

	// Active session
	if stateFile.HasActiveSession() {
		fmt.Printf("Active session: %s\n", stateFile.ActiveSessionID())
		fmt.Println("  (Use 'pocketcube apply' to add moves or 'pocketcube reset' to abandon)")
	} else {
		fmt.Println("No active session")
	}

	fmt.Println()

	// Working cube
	state, err := loadWorkingCube(stateFile)
	if err != nil {
		fmt.Printf("Working cube unreadable: %v\n", err)
		fmt.Println("  (Use 'pocketcube apply --fresh' or 'pocketcube reset' to recover)")
		return nil
	}

	fmt.Println("Working cube:")
	fmt.Print(renderNet(state))
	fmt.Println()
	fmt.Println(renderPhase(state))

	progress := state.GetProgress()
	fmt.Println()
	fmt.Printf("  First face:  %s\n", checkmark(progress.FirstFace))
	fmt.Printf("  First layer: %s\n", checkmark(progress.FirstLayer))
	fmt.Printf("  Oriented:    %s\n", checkmark(progress.Oriented))
	fmt.Printf("  Solved:      %s\n", checkmark(progress.Solved))

	return nil
}

func checkmark(done bool) string {
	if done {
		return "yes"
	}
	return "no"
}
