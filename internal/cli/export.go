package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/analysis"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	exportSessionID string
	exportFormat    string
	exportOutput    string
	exportLast      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export session data",
	Long:  `Export recorded session data in various formats.`,
}

var exportMovesCmd = &cobra.Command{
	Use:   "moves",
	Short: "Export moves from a session",
	Long: `Export the move sequence from a session in text or JSON format.

Examples:
  pocketcube export moves --last
  pocketcube export moves --id <session_id> --format json
  pocketcube export moves --id <session_id> --format txt -o moves.txt`,
	RunE: runExportMoves,
}

var exportSessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Export a full session as JSON",
	Long: `Export a complete session as JSON: metadata, moves, phase events,
and computed statistics.

Examples:
  pocketcube export session --last
  pocketcube export session --id <session_id> -o session.json`,
	RunE: runExportSession,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.AddCommand(exportMovesCmd)
	exportMovesCmd.Flags().StringVar(&exportSessionID, "id", "", "Session ID to export")
	exportMovesCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last session")
	exportMovesCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	exportMovesCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")

	exportCmd.AddCommand(exportSessionCmd)
	exportSessionCmd.Flags().StringVar(&exportSessionID, "id", "", "Session ID to export")
	exportSessionCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last session")
	exportSessionCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

// exportTargetID resolves the session named by --id or --last.
func exportTargetID(db *storage.DB) (string, error) {
	if exportSessionID == "" && !exportLast {
		return "", fmt.Errorf("specify --id or --last")
	}

	if exportLast {
		sessionRepo := storage.NewSessionRepository(db)
		session, err := sessionRepo.GetLast()
		if err != nil {
			return "", fmt.Errorf("failed to get last session: %w", err)
		}
		if session == nil {
			return "", fmt.Errorf("no sessions found")
		}
		return session.SessionID, nil
	}

	return exportSessionID, nil
}

// writeExport sends output to the file named by -o, or stdout.
func writeExport(output string, what string) error {
	if exportOutput == "" {
		fmt.Println(output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Exported %s to %s\n", what, exportOutput)
	return nil
}

func runExportMoves(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionID, err := exportTargetID(db)
	if err != nil {
		return err
	}

	moveRepo := storage.NewMoveRepository(db)
	moves, err := moveRepo.GetBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}

	if len(moves) == 0 {
		return fmt.Errorf("no moves found for session %s", sessionID)
	}

	var output string

	switch strings.ToLower(exportFormat) {
	case "txt":
		var notations []string
		for _, m := range moves {
			notations = append(notations, m.Notation)
		}
		output = strings.Join(notations, " ")

	case "json":
		type MoveJSON struct {
			MoveIndex int    `json:"move_index"`
			TsMs      int64  `json:"ts_ms"`
			Face      string `json:"face"`
			Turn      int    `json:"turn"`
			Notation  string `json:"notation"`
		}

		var movesJSON []MoveJSON
		for _, m := range moves {
			movesJSON = append(movesJSON, MoveJSON{
				MoveIndex: m.MoveIndex,
				TsMs:      m.TsMs,
				Face:      m.Face,
				Turn:      m.Turn,
				Notation:  m.Notation,
			})
		}

		data, err := json.MarshalIndent(movesJSON, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
	}

	return writeExport(output, fmt.Sprintf("%d moves", len(moves)))
}

func runExportSession(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionID, err := exportTargetID(db)
	if err != nil {
		return err
	}

	sessionRepo := storage.NewSessionRepository(db)
	moveRepo := storage.NewMoveRepository(db)
	phaseRepo := storage.NewPhaseRepository(db)

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

	events, err := phaseRepo.GetBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get phase events: %w", err)
	}

	type MoveJSON struct {
		MoveIndex int    `json:"move_index"`
		TsMs      int64  `json:"ts_ms"`
		Face      string `json:"face"`
		Turn      int    `json:"turn"`
		Notation  string `json:"notation"`
	}

	type PhaseJSON struct {
		TsMs      int64  `json:"ts_ms"`
		MoveIndex int    `json:"move_index"`
		PhaseKey  string `json:"phase_key"`
	}

	type SessionJSON struct {
		SessionID  string            `json:"session_id"`
		StartedAt  string            `json:"started_at"`
		EndedAt    string            `json:"ended_at,omitempty"`
		DurationMs int64             `json:"duration_ms,omitempty"`
		Scramble   string            `json:"scramble,omitempty"`
		FinalState string            `json:"final_state,omitempty"`
		Solved     *bool             `json:"solved,omitempty"`
		Notes      string            `json:"notes,omitempty"`
		AppVersion string            `json:"app_version,omitempty"`
		Moves      []MoveJSON        `json:"moves"`
		Phases     []PhaseJSON       `json:"phase_events"`
		Summary    *analysis.Summary `json:"summary"`
	}

	out := SessionJSON{
		SessionID: session.SessionID,
		StartedAt: session.StartedAt.UTC().Format(time.RFC3339),
		Solved:    session.Solved,
	}
	if session.EndedAt != nil {
		out.EndedAt = session.EndedAt.UTC().Format(time.RFC3339)
	}
	if session.DurationMs != nil {
		out.DurationMs = *session.DurationMs
	}
	if session.ScrambleText != nil {
		out.Scramble = *session.ScrambleText
	}
	if session.FinalState != nil {
		out.FinalState = *session.FinalState
	}
	if session.Notes != nil {
		out.Notes = *session.Notes
	}
	if session.AppVersion != nil {
		out.AppVersion = *session.AppVersion
	}

	for _, m := range records {
		out.Moves = append(out.Moves, MoveJSON{
			MoveIndex: m.MoveIndex,
			TsMs:      m.TsMs,
			Face:      m.Face,
			Turn:      m.Turn,
			Notation:  m.Notation,
		})
	}

	for _, e := range events {
		out.Phases = append(out.Phases, PhaseJSON{
			TsMs:      e.TsMs,
			MoveIndex: e.MoveIndex,
			PhaseKey:  e.PhaseKey,
		})
	}

	moves := storage.ToMoves(records)
	summary := analysis.Summarize(moves, out.DurationMs)
	summary.Phases = analysis.Segments(phaseMarks(events), moves, 0, sessionEndTs(session, records))
	out.Summary = summary

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return writeExport(string(data), fmt.Sprintf("session %s", sessionID))
}
