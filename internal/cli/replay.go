package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	replayLast bool
	replayStep bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Replay a recorded session",
	Long: `Rebuild a recorded session move by move from the database.

The cube is reconstructed by applying the stored scramble and then
every recorded move in order. Phase transitions are re-derived from
the cube state, and the final state is checked against the one stored
when the session ended.

Use --last to replay the most recent session.`,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the most recent session")
	replayCmd.Flags().BoolVar(&replayStep, "step", false, "Print the cube after every move")
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	moveRepo := storage.NewMoveRepository(db)

	sessionID, err := resolveSessionID(sessionRepo, args, replayLast)
	if err != nil {
		return err
	}

	session, err := sessionRepo.Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return fmt.Errorf("session not found: %s", sessionID)
	}

	records, err := moveRepo.GetBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}

	state := pocketcube.NewCube()

	if session.ScrambleText != nil && *session.ScrambleText != "" {
		scramble, err := pocketcube.ParseMoves(*session.ScrambleText)
		if err != nil {
			return fmt.Errorf("stored scramble is invalid: %w", err)
		}
		state = state.ApplyMoves(scramble)
		fmt.Printf("Scramble: %s\n\n", *session.ScrambleText)
		fmt.Print(renderNet(state))
		fmt.Println()
	}

	moves := storage.ToMoves(records)
	if len(moves) != len(records) {
		fmt.Printf("Warning: %d of %d stored moves could not be parsed\n", len(records)-len(moves), len(records))
	}

	// Same baseline the recorder uses, so the same transitions fall out
	highest := pocketcube.PhaseScrambled
	for i, move := range moves {
		state = state.Apply(move)

		if replayStep {
			fmt.Printf("%3d. %s\n", i+1, move.Notation())
			fmt.Print(renderNet(state))
			fmt.Println()
		}

		if phase := state.DetectPhase(); phase > highest {
			highest = phase
			fmt.Printf("Move %d (%s): reached %s\n", i+1, move.Notation(), phase.DisplayName())
		}
	}

	fmt.Println()
	fmt.Printf("Replayed %d moves\n\n", len(moves))
	fmt.Print(renderNet(state))
	fmt.Println()
	fmt.Println(renderPhase(state))

	if session.FinalState != nil && *session.FinalState != "" {
		if state.Compact() == *session.FinalState {
			fmt.Println()
			fmt.Println("Replay verified: final state matches the stored state.")
		} else {
			return fmt.Errorf("replay mismatch: got %s, stored %s", state.Compact(), *session.FinalState)
		}
	}

	return nil
}
