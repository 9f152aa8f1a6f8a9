// Package cli implements the command-line interface for pocketcube.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/config"
	"github.com/SeamusWaldron/pocketcube/internal/logging"
	"github.com/SeamusWaldron/pocketcube/internal/recorder"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath    string
	statePath string
	verbose   bool

	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "pocketcube",
	Short: "Pocket cube simulator and session recorder",
	Long: `pocketcube - A CLI for simulating, recording, and analyzing 2x2 pocket
cube solves.

Scramble a virtual cube, apply moves in standard notation, and watch the
solve progress phase by phase. Sessions are stored in a local SQLite
database for replay, export, and analysis.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		level := logging.ParseLevel(cfg.LogLevel)
		if verbose {
			level = logging.LevelDebug
		}
		logger = logging.New(os.Stderr, level)

		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.pocketcube/pocketcube.db)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "State file path (default: ~/.pocketcube/state.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getDBPath returns the database path from flag, environment, or default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath
	}
	return "" // Will use default
}

// getStatePath returns the state file path from flag, environment, or default.
func getStatePath() string {
	if statePath != "" {
		return statePath
	}
	if cfg != nil && cfg.StatePath != "" {
		return cfg.StatePath
	}
	return ""
}

func openDB() (*storage.DB, error) {
	path := getDBPath()
	var db *storage.DB
	var err error

	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func openStateFile() (*recorder.StateFile, error) {
	path := getStatePath()
	if path == "" {
		return recorder.NewDefaultStateFile()
	}
	return recorder.NewStateFile(path)
}

// loadWorkingCube restores the working cube from the state file, or a
// solved cube when none is stored.
func loadWorkingCube(sf *recorder.StateFile) (pocketcube.State, error) {
	compact := sf.CubeState()
	if compact == "" {
		return pocketcube.NewCube(), nil
	}

	state, err := pocketcube.ParseState(compact)
	if err != nil {
		return pocketcube.State{}, fmt.Errorf("failed to restore cube state: %w", err)
	}
	return state, nil
}

// saveWorkingCube persists the working cube and its highest phase.
func saveWorkingCube(sf *recorder.StateFile, state pocketcube.State, highest pocketcube.Phase) error {
	if err := sf.SetCubeState(state.Compact()); err != nil {
		return err
	}
	return sf.SetHighestPhase(highest.String())
}

// storedHighestPhase reads the highest phase back from the state file.
func storedHighestPhase(sf *recorder.StateFile) pocketcube.Phase {
	key := sf.HighestPhase()
	for _, p := range pocketcube.AllPhases {
		if p.String() == key {
			return p
		}
	}
	return pocketcube.PhaseScrambled
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
