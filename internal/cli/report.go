package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/analysis"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	reportLast      bool
	reportOutputDir string
	trendWindow     int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate analysis reports",
	Long:  `Generate analysis report files for sessions and trends.`,
}

var reportSessionCmd = &cobra.Command{
	Use:   "session [session-id]",
	Short: "Generate a session report",
	Long: `Generate a detailed report directory for a recorded session.

Reports include:
  summary.json    overview statistics with phase breakdown
  moves.txt       move sequence in notation
  moves.json      detailed move data
  tools.json      recognized algorithm usage
  patterns.json   repeated move sequences
  phase_moves/    per-phase move sequences`,
	RunE: runReportSession,
}

var reportTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Generate a trend report",
	Long:  `Generate a trend report across recent sessions with improvement metrics.`,
	RunE:  runReportTrend,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.AddCommand(reportSessionCmd)
	reportSessionCmd.Flags().BoolVar(&reportLast, "last", false, "Report on the last session")
	reportSessionCmd.Flags().StringVarP(&reportOutputDir, "output", "o", "", "Output directory (default: reports/<started-at>)")

	reportCmd.AddCommand(reportTrendCmd)
	reportTrendCmd.Flags().IntVar(&trendWindow, "window", 50, "Number of recent sessions to analyze")
	reportTrendCmd.Flags().StringVarP(&reportOutputDir, "output", "o", "", "Output directory")
}

func runReportSession(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	moveRepo := storage.NewMoveRepository(db)
	phaseRepo := storage.NewPhaseRepository(db)

	sessionID, err := resolveSessionID(sessionRepo, args, reportLast)
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
	if len(records) == 0 {
		return fmt.Errorf("no moves recorded for session %s", sessionID)
	}

	events, err := phaseRepo.GetBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get phase events: %w", err)
	}

	outputDir := reportOutputDir
	if outputDir == "" {
		outputDir = filepath.Join("reports", session.StartedAt.Format("2006-01-02_150405"))
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Println("Analyzing session...")

	moves := storage.ToMoves(records)
	segments := analysis.Segments(phaseMarks(events), moves, 0, sessionEndTs(session, records))

	var durationMs int64
	if session.DurationMs != nil {
		durationMs = *session.DurationMs
	}

	summary := analysis.Summarize(moves, durationMs)
	summary.Phases = segments

	if err := writeJSON(filepath.Join(outputDir, "summary.json"), summary); err != nil {
		return err
	}

	notations := make([]string, len(records))
	for i, m := range records {
		notations[i] = m.Notation
	}
	movesText := strings.Join(notations, " ")
	if err := os.WriteFile(filepath.Join(outputDir, "moves.txt"), []byte(movesText+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write moves.txt: %w", err)
	}

	type MoveJSON struct {
		MoveIndex int    `json:"move_index"`
		TsMs      int64  `json:"ts_ms"`
		Face      string `json:"face"`
		Turn      int    `json:"turn"`
		Notation  string `json:"notation"`
	}
	movesJSON := make([]MoveJSON, len(records))
	for i, m := range records {
		movesJSON[i] = MoveJSON{
			MoveIndex: m.MoveIndex,
			TsMs:      m.TsMs,
			Face:      m.Face,
			Turn:      m.Turn,
			Notation:  m.Notation,
		}
	}
	if err := writeJSON(filepath.Join(outputDir, "moves.json"), movesJSON); err != nil {
		return err
	}

	fmt.Println("  - Detecting algorithms...")
	tools := analysis.DetectTools(moves)
	if err := writeJSON(filepath.Join(outputDir, "tools.json"), tools); err != nil {
		return err
	}

	fmt.Println("  - Mining patterns...")
	patterns := analysis.MinePatterns(moves, 3, 6, 10)
	if err := writeJSON(filepath.Join(outputDir, "patterns.json"), patterns); err != nil {
		return err
	}

	if len(segments) > 0 {
		phaseMoveDir := filepath.Join(outputDir, "phase_moves")
		if err := os.MkdirAll(phaseMoveDir, 0755); err != nil {
			return fmt.Errorf("failed to create phase_moves directory: %w", err)
		}

		fmt.Println("  - Splitting phases...")
		for i, seg := range segments {
			rangeEnd := seg.EndTsMs
			if i == len(segments)-1 {
				// The final segment includes its end timestamp.
				rangeEnd++
			}
			phaseRecords, err := moveRepo.GetBySessionRange(sessionID, seg.StartTsMs, rangeEnd)
			if err != nil || len(phaseRecords) == 0 {
				continue
			}

			phaseNotations := make([]string, len(phaseRecords))
			for j, m := range phaseRecords {
				phaseNotations[j] = m.Notation
			}
			path := filepath.Join(phaseMoveDir, seg.PhaseKey+".txt")
			if err := os.WriteFile(path, []byte(strings.Join(phaseNotations, " ")+"\n"), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		}
	}

	logger.Debug("session report generated", "session_id", sessionID, "dir", outputDir)

	fmt.Println()
	fmt.Printf("Session: %s\n", session.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Report generated: %s\n", outputDir)
	fmt.Println()
	fmt.Println("Files created:")
	fmt.Println("  - summary.json")
	fmt.Println("  - moves.txt")
	fmt.Println("  - moves.json")
	fmt.Println("  - tools.json")
	fmt.Println("  - patterns.json")
	if len(segments) > 0 {
		fmt.Println("  - phase_moves/")
	}

	fmt.Println()
	fmt.Println("Summary:")
	if durationMs > 0 {
		fmt.Printf("  Time: %s\n", formatDuration(time.Duration(durationMs)*time.Millisecond))
	}
	fmt.Printf("  Moves: %d (canonical: %d, %.0f%% efficient)\n",
		summary.TotalMoves, summary.CanonicalMoves, summary.Efficiency*100)
	if summary.TPS > 0 {
		fmt.Printf("  TPS: %.2f\n", summary.TPS)
	}
	if summary.LongestPauseMs > 0 {
		fmt.Printf("  Longest pause: %dms\n", summary.LongestPauseMs)
	}
	if len(tools.Matches) > 0 {
		fmt.Printf("  Algorithms detected: %d\n", len(tools.Matches))
	}

	if fours, ok := patterns.TopPatterns[4]; ok && len(fours) > 0 {
		fmt.Println()
		fmt.Println("Top 4-move patterns:")
		for i, p := range fours {
			if i >= 3 {
				break
			}
			fmt.Printf("  %dx  %s\n", p.Count, strings.Join(p.Sequence, " "))
		}
	}

	return nil
}

func runReportTrend(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	moveRepo := storage.NewMoveRepository(db)
	phaseRepo := storage.NewPhaseRepository(db)

	sessions, err := sessionRepo.List(trendWindow)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if len(sessions) == 0 {
		return fmt.Errorf("no sessions found")
	}

	fmt.Printf("Analyzing %d sessions...\n", len(sessions))

	var data []analysis.SessionData
	for i := range sessions {
		s := &sessions[i]

		sd := analysis.SessionData{
			SessionID: s.SessionID,
			StartedAt: s.StartedAt,
		}
		if s.DurationMs != nil {
			sd.DurationMs = *s.DurationMs
		}

		moveCount, err := moveRepo.Count(s.SessionID)
		if err != nil {
			return fmt.Errorf("failed to count moves: %w", err)
		}
		sd.MoveCount = moveCount

		// Phase segments are only meaningful for finished sessions.
		if sd.DurationMs > 0 {
			events, err := phaseRepo.GetBySession(s.SessionID)
			if err == nil && len(events) > 0 {
				records, err := moveRepo.GetBySession(s.SessionID)
				if err == nil {
					moves := storage.ToMoves(records)
					sd.Phases = analysis.Segments(phaseMarks(events), moves, 0, sessionEndTs(s, records))
				}
			}
		}

		data = append(data, sd)
	}

	report := analysis.AnalyzeTrends(data)
	if report.CompletedSessions == 0 {
		return fmt.Errorf("no completed sessions found")
	}

	outputDir := reportOutputDir
	if outputDir == "" {
		outputDir = "reports"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outputFile := filepath.Join(outputDir, "trend_report.json")
	if err := writeJSON(outputFile, report); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Trend report generated: %s\n", outputFile)
	fmt.Println()
	fmt.Printf("Analyzed %d completed sessions\n", report.CompletedSessions)
	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  Average time: %s\n", formatDuration(time.Duration(report.AvgDurationMs)*time.Millisecond))
	fmt.Printf("  Average moves: %.1f\n", report.AvgMoves)
	fmt.Printf("  Average TPS: %.2f\n", report.AvgTPS)
	fmt.Println()
	fmt.Printf("  Best solve: %s (%s)\n",
		formatDuration(time.Duration(report.Best.DurationMs)*time.Millisecond), report.Best.SessionID)
	fmt.Printf("  Worst solve: %s (%s)\n",
		formatDuration(time.Duration(report.Worst.DurationMs)*time.Millisecond), report.Worst.SessionID)
	fmt.Println()
	fmt.Printf("  Improvement: %.1f%%\n", report.ImprovementPct)
	fmt.Printf("  Consistency: %.1f/100\n", report.ConsistencyScore)

	if len(report.RollingAvgMs) > 0 {
		fmt.Println()
		fmt.Println("Rolling averages:")
		var windows []int
		for w := range report.RollingAvgMs {
			windows = append(windows, w)
		}
		sort.Ints(windows)
		for _, w := range windows {
			fmt.Printf("  last %d: %s\n", w, formatDuration(time.Duration(report.RollingAvgMs[w])*time.Millisecond))
		}
	}

	if len(report.PhaseTrends) > 0 {
		fmt.Println()
		fmt.Println("Phase trends:")
		for _, p := range pocketcube.AllPhases {
			trend, ok := report.PhaseTrends[p.String()]
			if !ok {
				continue
			}
			fmt.Printf("  %-12s %6.1fs avg, %+.1f%% improvement\n",
				p.DisplayName(), trend.AvgDurationMs/1000.0, trend.ImprovementPct)
		}
	}

	return nil
}

// writeJSON writes data as formatted JSON to a file.
func writeJSON(path string, data interface{}) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
