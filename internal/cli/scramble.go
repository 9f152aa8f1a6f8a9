package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/recorder"
)

var (
	scrambleLength int
	scrambleSeed   int64
	scrambleSave   bool
	scrambleNotes  string
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble the working cube",
	Long: `Reset the working cube to solved and apply a random scramble.

The scramble sequence is printed so it can be repeated on a physical
cube. With --save, a new recorded session is started with this
scramble; moves applied afterwards with 'pocketcube apply' are stored
in that session.`,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", pocketcube.DefaultScrambleLength, "Number of scramble moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed for a reproducible scramble")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Start a recorded session with this scramble")
	scrambleCmd.Flags().StringVar(&scrambleNotes, "notes", "", "Notes to attach to the saved session")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	stateFile, err := openStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	if stateFile.HasActiveSession() {
		return fmt.Errorf("a recorded session is active; end it first with 'pocketcube reset'")
	}

	n := scrambleLength
	if !cmd.Flags().Changed("length") && cfg != nil && cfg.ScrambleLength > 0 {
		n = cfg.ScrambleLength
	}

	var moves []pocketcube.Move
	if cmd.Flags().Changed("seed") {
		moves = pocketcube.ScrambleWithRand(rand.New(rand.NewSource(scrambleSeed)), n)
	} else {
		moves = pocketcube.Scramble(n)
	}

	state := pocketcube.NewCube().ApplyMoves(moves)
	scrambleText := pocketcube.FormatMoves(moves)

	if err := saveWorkingCube(stateFile, state, pocketcube.PhaseScrambled); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	logger.Debug("cube scrambled", "length", n, "scramble", scrambleText)

	if scrambleSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		rec := recorder.New(db, stateFile)
		sessionID, err := rec.Start(scrambleText, scrambleNotes, version)
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}
		fmt.Printf("Session started: %s\n", sessionID)
	}

	fmt.Printf("Scramble: %s\n\n", scrambleText)
	fmt.Print(renderNet(state))
	fmt.Println()
	fmt.Println(renderPhase(state))

	return nil
}
