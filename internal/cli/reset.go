package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/recorder"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the working cube to solved",
	Long: `Restore the working cube to the solved state.

If a recorded session is active it is ended first, storing the cube
state it was abandoned in.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	stateFile, err := openStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	if stateFile.HasActiveSession() {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		rec := recorder.New(db, stateFile)
		sessionID := stateFile.ActiveSessionID()
		if err := rec.Resume(sessionID); err != nil {
			// The session row is gone or already ended; drop the reference.
			logger.Warn("could not resume active session", "session_id", sessionID, "error", err)
			_ = stateFile.ClearActiveSession()
		} else {
			finalState := ""
			solved := false
			if state, err := loadWorkingCube(stateFile); err == nil {
				finalState = state.Compact()
				solved = state.IsSolved()
			}
			if err := rec.End(finalState, solved); err != nil {
				return err
			}
			fmt.Printf("Session ended: %s\n", sessionID)
		}
	}

	if err := saveWorkingCube(stateFile, pocketcube.NewCube(), pocketcube.PhaseScrambled); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	fmt.Println("Working cube reset to solved.")
	return nil
}
