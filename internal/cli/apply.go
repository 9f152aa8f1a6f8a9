package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/recorder"
)

var applyFresh bool

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply moves to the working cube",
	Long: `Apply a move sequence in standard notation to the working cube.

Supported tokens are U D F B R L, each optionally followed by ' for a
counterclockwise turn or 2 for a half turn. An unknown token rejects
the whole sequence and the cube is left untouched.

If a recorded session is active, the moves are appended to it, phase
transitions are stored, and the session ends automatically when the
cube is solved.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyFresh, "fresh", false, "Reset to a solved cube before applying")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	notation := strings.Join(args, " ")
	moves, err := pocketcube.ParseMoves(notation)
	if err != nil {
		return err
	}

	stateFile, err := openStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	var state pocketcube.State
	highest := storedHighestPhase(stateFile)

	if applyFresh {
		if stateFile.HasActiveSession() {
			return fmt.Errorf("a recorded session is active; end it first with 'pocketcube reset'")
		}
		state = pocketcube.NewCube()
		highest = pocketcube.PhaseScrambled
	} else {
		state, err = loadWorkingCube(stateFile)
		if err != nil {
			return err
		}
	}

	var rec *recorder.Recorder
	if stateFile.HasActiveSession() {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		rec = recorder.New(db, stateFile)
		if err := rec.Resume(stateFile.ActiveSessionID()); err != nil {
			return fmt.Errorf("failed to resume session: %w", err)
		}
	}

	for _, move := range moves {
		move = move.WithTime(time.Now())
		state = state.Apply(move)

		if rec != nil {
			if err := rec.RecordMove(move); err != nil {
				return err
			}
		}

		if phase := state.DetectPhase(); phase > highest {
			highest = phase
			logger.Debug("phase reached", "phase", phase.String())
			if rec != nil {
				if err := rec.RecordPhase(phase); err != nil {
					return err
				}
			}
		}
	}

	if rec != nil && state.IsSolved() {
		if err := rec.End(state.Compact(), true); err != nil {
			return err
		}
		fmt.Printf("Session complete: %s\n\n", rec.SessionID())
	}

	if err := saveWorkingCube(stateFile, state, highest); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	fmt.Print(renderNet(state))
	fmt.Println()
	fmt.Println(renderPhase(state))

	return nil
}
