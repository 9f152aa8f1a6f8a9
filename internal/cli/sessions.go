package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/analysis"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	listLimit int
	showLast  bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage recorded sessions",
	Long:  `Commands for listing, inspecting, and deleting recorded solving sessions.`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Long:  `Display a list of recent recorded sessions with basic statistics.`,
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show details of a session",
	Long: `Display detailed information about a recorded session including:
- Session metadata (duration, moves, TPS)
- Phase breakdown with timing
- Move sequence

Use --last to show the most recent session.`,
	RunE: runSessionsShow,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session",
	Long:  `Delete a recorded session and all of its moves and phase events.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsListCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of sessions to display")

	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent session")

	sessionsCmd.AddCommand(sessionsDeleteCmd)
}

// resolveSessionID picks the session from args or the most recent one.
func resolveSessionID(repo *storage.SessionRepository, args []string, last bool) (string, error) {
	if last {
		session, err := repo.GetLast()
		if err != nil {
			return "", fmt.Errorf("failed to get latest session: %w", err)
		}
		if session == nil {
			return "", fmt.Errorf("no sessions found")
		}
		return session.SessionID, nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	return "", fmt.Errorf("please provide a session ID or use --last")
}

func phaseMarks(events []storage.PhaseEvent) []analysis.PhaseMark {
	marks := make([]analysis.PhaseMark, 0, len(events))
	for _, e := range events {
		marks = append(marks, analysis.PhaseMark{
			PhaseKey:  e.PhaseKey,
			TsMs:      e.TsMs,
			MoveIndex: e.MoveIndex,
		})
	}
	return marks
}

// sessionEndTs returns the analysis end timestamp: the stored duration
// for ended sessions, otherwise the timestamp of the last move.
func sessionEndTs(session *storage.Session, records []storage.MoveRecord) int64 {
	if session.DurationMs != nil {
		return *session.DurationMs
	}
	if len(records) > 0 {
		return records[len(records)-1].TsMs
	}
	return 0
}

// printWrapped prints notations in lines of roughly 60 characters.
func printWrapped(indent string, notations []string) {
	var line string
	for i, n := range notations {
		if len(line)+len(n)+1 > 60 {
			fmt.Printf("%s%s\n", indent, line)
			line = n
		} else if line == "" {
			line = n
		} else {
			line += " " + n
		}

		if i == len(notations)-1 && line != "" {
			fmt.Printf("%s%s\n", indent, line)
		}
	}
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	sessions, err := sessionRepo.List(listLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet")
		fmt.Println("Start a new session with: pocketcube scramble --save")
		return nil
	}

	fmt.Printf("Recent sessions (showing %d):\n", len(sessions))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-10s  %-6s  %-6s  %-6s  %s\n", "ID", "Started", "Duration", "Moves", "TPS", "Solved", "Notes")
	fmt.Println("------------------------------------  --------------------  ----------  ------  ------  ------  -----")

	for _, s := range sessions {
		duration := "-"
		moves := "-"
		tps := "-"
		solved := "-"

		if s.DurationMs != nil {
			d := time.Duration(*s.DurationMs) * time.Millisecond
			duration = formatDuration(d)
		}

		moveCount, _ := sessionRepo.GetMoveCount(s.SessionID)
		if moveCount > 0 {
			moves = fmt.Sprintf("%d", moveCount)
			if s.DurationMs != nil && *s.DurationMs > 0 {
				tps = fmt.Sprintf("%.2f", float64(moveCount)/(float64(*s.DurationMs)/1000.0))
			}
		}

		if s.Solved != nil {
			solved = checkmark(*s.Solved)
		}

		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
			if len(notes) > 30 {
				notes = notes[:27] + "..."
			}
		}

		status := ""
		if s.EndedAt == nil {
			status = " (active)"
		}

		fmt.Printf("%-36s  %-20s  %-10s  %-6s  %-6s  %-6s  %s%s\n",
			s.SessionID,
			s.StartedAt.Format("2006-01-02 15:04:05"),
			duration,
			moves,
			tps,
			solved,
			notes,
			status,
		)
	}

	return nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	moveRepo := storage.NewMoveRepository(db)
	phaseRepo := storage.NewPhaseRepository(db)

	sessionID, err := resolveSessionID(sessionRepo, args, showLast)
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

	events, err := phaseRepo.GetBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get phase events: %w", err)
	}

	fmt.Println("Session Details")
	fmt.Println("===============")
	fmt.Println()

	fmt.Printf("ID:       %s\n", session.SessionID)
	fmt.Printf("Started:  %s\n", session.StartedAt.Format("2006-01-02 15:04:05"))
	if session.EndedAt != nil {
		fmt.Printf("Ended:    %s\n", session.EndedAt.Format("2006-01-02 15:04:05"))
	}
	if session.ScrambleText != nil && *session.ScrambleText != "" {
		fmt.Printf("Scramble: %s\n", *session.ScrambleText)
	}
	if session.Solved != nil {
		fmt.Printf("Solved:   %s\n", checkmark(*session.Solved))
	}
	if session.Notes != nil && *session.Notes != "" {
		fmt.Printf("Notes:    %s\n", *session.Notes)
	}
	fmt.Println()

	// Stats
	fmt.Println("Statistics")
	fmt.Println("----------")
	fmt.Printf("Moves:    %d\n", len(records))
	if session.DurationMs != nil {
		duration := time.Duration(*session.DurationMs) * time.Millisecond
		fmt.Printf("Duration: %s\n", formatDuration(duration))
		if len(records) > 0 && *session.DurationMs > 0 {
			tps := float64(len(records)) / (float64(*session.DurationMs) / 1000.0)
			fmt.Printf("TPS:      %.2f\n", tps)
		}
	}
	fmt.Println()

	// Phase breakdown with moves
	moves := storage.ToMoves(records)
	segments := analysis.Segments(phaseMarks(events), moves, 0, sessionEndTs(session, records))

	if len(segments) > 0 {
		fmt.Println("Phases")
		fmt.Println("------")

		for i, seg := range segments {
			duration := formatDuration(time.Duration(seg.DurationMs) * time.Millisecond)
			tps := ""
			if seg.TPS > 0 {
				tps = fmt.Sprintf(" @ %.2f TPS", seg.TPS)
			}

			fmt.Printf("\n%s (%d moves, %s%s)\n", seg.DisplayName, seg.MoveCount, duration, tps)

			// The final segment includes its end timestamp
			rangeEnd := seg.EndTsMs
			if i == len(segments)-1 {
				rangeEnd++
			}
			phaseRecords, _ := moveRepo.GetBySessionRange(sessionID, seg.StartTsMs, rangeEnd)
			if len(phaseRecords) > 0 {
				notations := make([]string, 0, len(phaseRecords))
				for _, r := range phaseRecords {
					notations = append(notations, r.Notation)
				}
				printWrapped("  ", notations)
			}
		}
	} else if len(records) > 0 {
		fmt.Println("Moves")
		fmt.Println("-----")

		notations := make([]string, 0, len(records))
		for _, r := range records {
			notations = append(notations, r.Notation)
		}
		printWrapped("", notations)
	}

	// Final state
	if session.FinalState != nil && *session.FinalState != "" {
		if state, err := pocketcube.ParseState(*session.FinalState); err == nil {
			fmt.Println()
			fmt.Println("Final state:")
			fmt.Print(renderNet(state))
		}
	}

	return nil
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionID := args[0]

	sessionRepo := storage.NewSessionRepository(db)
	session, err := sessionRepo.Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return fmt.Errorf("session not found: %s", sessionID)
	}

	if err := sessionRepo.Delete(sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	// Drop a dangling active-session reference
	if stateFile, err := openStateFile(); err == nil {
		if stateFile.ActiveSessionID() == sessionID {
			_ = stateFile.ClearActiveSession()
		}
	}

	fmt.Printf("Deleted session: %s\n", sessionID)
	return nil
}
