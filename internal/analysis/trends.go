package analysis

import (
	"math"
	"sort"
	"time"
)

// Rolling windows follow the usual cubing averages (ao5, ao12, ao50).
var rollingWindows = []int{5, 12, 50}

// SessionData is the per-session input for trend analysis. Phases may be
// empty when a session recorded no phase events.
type SessionData struct {
	SessionID  string
	StartedAt  time.Time
	DurationMs int64
	MoveCount  int
	Phases     []PhaseStat
}

// SessionPoint is one completed session inside a trend report.
type SessionPoint struct {
	SessionID  string  `json:"session_id"`
	Timestamp  string  `json:"timestamp"`
	DurationMs int64   `json:"duration_ms"`
	MoveCount  int     `json:"move_count"`
	TPS        float64 `json:"tps"`
}

// PhaseTrend aggregates one phase across sessions.
type PhaseTrend struct {
	PhaseKey       string  `json:"phase_key"`
	AvgDurationMs  float64 `json:"avg_duration_ms"`
	AvgMoves       float64 `json:"avg_moves"`
	AvgTPS         float64 `json:"avg_tps"`
	ImprovementPct float64 `json:"improvement_pct"`
}

// TrendReport tracks solving progress across recent sessions.
type TrendReport struct {
	WindowSize        int    `json:"window_size"`
	TotalSessions     int    `json:"total_sessions"`
	CompletedSessions int    `json:"completed_sessions"`
	FirstStartedAt    string `json:"first_started_at,omitempty"`
	LastStartedAt     string `json:"last_started_at,omitempty"`

	AvgDurationMs float64 `json:"avg_duration_ms"`
	AvgMoves      float64 `json:"avg_moves"`
	AvgTPS        float64 `json:"avg_tps"`

	Best  *SessionPoint `json:"best_session,omitempty"`
	Worst *SessionPoint `json:"worst_session,omitempty"`

	// Improvement compares the first quarter of the window to the last;
	// positive means times are dropping.
	ImprovementPct   float64 `json:"improvement_pct"`
	ConsistencyScore float64 `json:"consistency_score"`

	RollingAvgMs map[int]float64       `json:"rolling_avg_ms,omitempty"`
	PhaseTrends  map[string]PhaseTrend `json:"phase_trends,omitempty"`

	Sessions []SessionPoint `json:"sessions"`
}

// AnalyzeTrends computes progress metrics across recent sessions. Sessions
// without a recorded duration are counted but excluded from timing metrics.
func AnalyzeTrends(sessions []SessionData) *TrendReport {
	report := &TrendReport{
		WindowSize:    len(sessions),
		TotalSessions: len(sessions),
	}

	if len(sessions) == 0 {
		return report
	}

	sorted := make([]SessionData, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.Before(sorted[j].StartedAt)
	})

	report.FirstStartedAt = sorted[0].StartedAt.Format(time.RFC3339)
	report.LastStartedAt = sorted[len(sorted)-1].StartedAt.Format(time.RFC3339)

	var completed []SessionData
	var durations []int64
	var totalDuration, totalMoves int64

	for _, s := range sorted {
		if s.DurationMs <= 0 {
			continue
		}

		completed = append(completed, s)
		durations = append(durations, s.DurationMs)
		totalDuration += s.DurationMs
		totalMoves += int64(s.MoveCount)

		point := sessionPoint(s)
		report.Sessions = append(report.Sessions, point)

		if report.Best == nil || s.DurationMs < report.Best.DurationMs {
			p := point
			report.Best = &p
		}
		if report.Worst == nil || s.DurationMs > report.Worst.DurationMs {
			p := point
			report.Worst = &p
		}
	}

	report.CompletedSessions = len(completed)
	if len(completed) == 0 {
		return report
	}

	n := float64(len(completed))
	report.AvgDurationMs = float64(totalDuration) / n
	report.AvgMoves = float64(totalMoves) / n
	report.AvgTPS = CalculateTPS(int(totalMoves), totalDuration)

	report.ImprovementPct = trendImprovement(durations)
	report.ConsistencyScore = consistencyScore(durations)

	rolling := make(map[int]float64)
	for _, w := range rollingWindows {
		if len(durations) >= w {
			rolling[w] = meanInt64(durations[len(durations)-w:])
		}
	}
	if len(rolling) > 0 {
		report.RollingAvgMs = rolling
	}

	report.PhaseTrends = phaseTrends(completed)

	return report
}

func sessionPoint(s SessionData) SessionPoint {
	return SessionPoint{
		SessionID:  s.SessionID,
		Timestamp:  s.StartedAt.Format(time.RFC3339),
		DurationMs: s.DurationMs,
		MoveCount:  s.MoveCount,
		TPS:        CalculateTPS(s.MoveCount, s.DurationMs),
	}
}

// trendImprovement compares the average duration of the first quarter of
// the window against the last quarter. Needs at least four data points.
func trendImprovement(durations []int64) float64 {
	if len(durations) < 4 {
		return 0
	}

	q := len(durations) / 4
	firstAvg := meanInt64(durations[:q])
	lastAvg := meanInt64(durations[len(durations)-q:])

	if firstAvg <= 0 {
		return 0
	}
	return (firstAvg - lastAvg) / firstAvg * 100
}

// consistencyScore maps the coefficient of variation of solve times onto
// a 0-100 scale. 100 means every solve took the same time.
func consistencyScore(durations []int64) float64 {
	if len(durations) < 2 {
		return 100
	}

	mean := meanInt64(durations)
	if mean <= 0 {
		return 100
	}

	var sumSquares float64
	for _, d := range durations {
		diff := float64(d) - mean
		sumSquares += diff * diff
	}
	stdDev := math.Sqrt(sumSquares / float64(len(durations)))

	score := 100 * (1 - stdDev/mean)
	if score < 0 {
		return 0
	}
	return score
}

func meanInt64(vs []int64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum int64
	for _, v := range vs {
		sum += v
	}
	return float64(sum) / float64(len(vs))
}

// phaseTrends aggregates phase segments by key across sessions, preserving
// session order so per-phase improvement lines up with the overall trend.
func phaseTrends(sessions []SessionData) map[string]PhaseTrend {
	byKey := make(map[string][]PhaseStat)
	for _, s := range sessions {
		for _, ps := range s.Phases {
			byKey[ps.PhaseKey] = append(byKey[ps.PhaseKey], ps)
		}
	}
	if len(byKey) == 0 {
		return nil
	}

	trends := make(map[string]PhaseTrend, len(byKey))
	for key, stats := range byKey {
		var durations []int64
		var totalDuration, totalMoves int64
		var totalTPS float64

		for _, ps := range stats {
			durations = append(durations, ps.DurationMs)
			totalDuration += ps.DurationMs
			totalMoves += int64(ps.MoveCount)
			totalTPS += ps.TPS
		}

		n := float64(len(stats))
		trends[key] = PhaseTrend{
			PhaseKey:       key,
			AvgDurationMs:  float64(totalDuration) / n,
			AvgMoves:       float64(totalMoves) / n,
			AvgTPS:         totalTPS / n,
			ImprovementPct: trendImprovement(durations),
		}
	}

	return trends
}
