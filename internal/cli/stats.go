package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/analysis"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	statsLast bool
	statsAll  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [session-id]",
	Short: "Analyze recorded sessions",
	Long: `Compute statistics for a recorded session: move counts, efficiency,
turns per second, pauses, phase timings, detected algorithms, and
repeated move patterns.

Use --last for the most recent session or --all for aggregate
statistics across every recorded session.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsLast, "last", false, "Analyze the most recent session")
	statsCmd.Flags().BoolVar(&statsAll, "all", false, "Aggregate statistics across all sessions")
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if statsAll {
		return runStatsAll(db)
	}

	sessionRepo := storage.NewSessionRepository(db)
	sessionID, err := resolveSessionID(sessionRepo, args, statsLast)
	if err != nil {
		return err
	}

	return runStatsSession(db, sessionID)
}

func runStatsSession(db *storage.DB, sessionID string) error {
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

	moves := storage.ToMoves(records)

	var durationMs int64
	if session.DurationMs != nil {
		durationMs = *session.DurationMs
	}
	summary := analysis.Summarize(moves, durationMs)
	summary.Phases = analysis.Segments(phaseMarks(events), moves, 0, sessionEndTs(session, records))

	fmt.Println("Session Statistics")
	fmt.Println("==================")
	fmt.Println()
	fmt.Printf("ID:       %s\n", session.SessionID)
	if session.ScrambleText != nil && *session.ScrambleText != "" {
		fmt.Printf("Scramble: %s\n", *session.ScrambleText)
	}
	if session.Solved != nil {
		fmt.Printf("Solved:   %s\n", checkmark(*session.Solved))
	}
	fmt.Println()

	fmt.Println("Moves")
	fmt.Println("-----")
	fmt.Printf("Total:         %d\n", summary.TotalMoves)
	if summary.TotalMoves > 0 {
		fmt.Printf("Canonical:     %d (%.0f%% efficient)\n", summary.CanonicalMoves, summary.Efficiency*100)
		fmt.Printf("CW / CCW:      %d / %d\n", summary.CWCount, summary.CCWCount)

		var faceParts []string
		for _, f := range []pocketcube.Face{
			pocketcube.FaceU, pocketcube.FaceD, pocketcube.FaceF,
			pocketcube.FaceB, pocketcube.FaceR, pocketcube.FaceL,
		} {
			if c := summary.FaceCounts[f.String()]; c > 0 {
				faceParts = append(faceParts, fmt.Sprintf("%s=%d", f.String(), c))
			}
		}
		if len(faceParts) > 0 {
			fmt.Printf("Faces:         %s\n", strings.Join(faceParts, " "))
		}
		if summary.MostUsedFace != "" {
			fmt.Printf("Most used:     %s\n", summary.MostUsedFace)
		}
		fmt.Printf("Longest run:   %d\n", summary.LongestRun)
	}
	if durationMs > 0 {
		fmt.Printf("Duration:      %s\n", formatDuration(time.Duration(durationMs)*time.Millisecond))
		fmt.Printf("TPS:           %.2f\n", summary.TPS)
	}
	if summary.LongestPauseMs > 0 {
		fmt.Printf("Longest pause: %s\n", formatDuration(time.Duration(summary.LongestPauseMs)*time.Millisecond))
	}
	if summary.AvgGapMs > 0 {
		fmt.Printf("Avg gap:       %.0fms\n", summary.AvgGapMs)
	}

	if len(summary.Phases) > 0 {
		fmt.Println()
		fmt.Println("Phases")
		fmt.Println("------")
		for _, seg := range summary.Phases {
			tps := ""
			if seg.TPS > 0 {
				tps = fmt.Sprintf(" @ %.2f TPS", seg.TPS)
			}
			fmt.Printf("%-20s %3d moves  %10s%s\n",
				seg.DisplayName,
				seg.MoveCount,
				formatDuration(time.Duration(seg.DurationMs)*time.Millisecond),
				tps,
			)
		}
	}

	tools := analysis.DetectTools(moves)
	if len(tools.Matches) > 0 {
		fmt.Println()
		fmt.Println("Algorithms")
		fmt.Println("----------")
		names := make([]string, 0, len(tools.Counts))
		for name := range tools.Counts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%-16s %d\n", name, tools.Counts[name])
		}
		fmt.Printf("Unmatched moves: %d\n", tools.UnmatchedMoves)
	}

	patterns := analysis.MinePatterns(moves, 3, 6, 3)
	if len(patterns.TopPatterns) > 0 {
		fmt.Println()
		fmt.Println("Repeated patterns")
		fmt.Println("-----------------")
		lengths := make([]int, 0, len(patterns.TopPatterns))
		for n := range patterns.TopPatterns {
			lengths = append(lengths, n)
		}
		sort.Ints(lengths)
		for _, n := range lengths {
			for _, p := range patterns.TopPatterns[n] {
				fmt.Printf("%dx  %s\n", p.Count, strings.Join(p.Sequence, " "))
			}
		}
	}

	return nil
}

func runStatsAll(db *storage.DB) error {
	sessionRepo := storage.NewSessionRepository(db)
	phaseRepo := storage.NewPhaseRepository(db)

	sessions, err := sessionRepo.List(10000)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet")
		fmt.Println("Start a new session with: pocketcube scramble --save")
		return nil
	}

	var ended, solvedCount, totalMoves int
	var totalDurationMs int64
	bestMs := int64(-1)

	for _, s := range sessions {
		if s.EndedAt == nil {
			continue
		}
		ended++
		if s.MoveCount != nil {
			totalMoves += *s.MoveCount
		}
		if s.DurationMs != nil {
			totalDurationMs += *s.DurationMs
		}
		if s.Solved != nil && *s.Solved {
			solvedCount++
			if s.DurationMs != nil && (bestMs < 0 || *s.DurationMs < bestMs) {
				bestMs = *s.DurationMs
			}
		}
	}

	fmt.Println("Aggregate Statistics")
	fmt.Println("====================")
	fmt.Println()
	fmt.Printf("Sessions: %d (%d ended, %d solved)\n", len(sessions), ended, solvedCount)
	if ended > 0 {
		fmt.Printf("Avg moves: %.1f\n", float64(totalMoves)/float64(ended))
		fmt.Printf("Avg time:  %s\n", formatDuration(time.Duration(totalDurationMs/int64(ended))*time.Millisecond))
		if totalDurationMs > 0 {
			fmt.Printf("Avg TPS:   %.2f\n", analysis.CalculateTPS(totalMoves, totalDurationMs))
		}
	}
	if bestMs >= 0 {
		fmt.Printf("Best solve: %s\n", formatDuration(time.Duration(bestMs)*time.Millisecond))
	}

	counts, err := phaseRepo.CountByPhase()
	if err == nil && len(counts) > 0 {
		fmt.Println()
		fmt.Println("Sessions reaching each phase")
		fmt.Println("----------------------------")
		for _, p := range pocketcube.AllPhases {
			if c, ok := counts[p.String()]; ok {
				fmt.Printf("%-20s %d\n", p.DisplayName(), c)
			}
		}
	}

	return nil
}
