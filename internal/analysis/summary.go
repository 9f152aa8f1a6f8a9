// Package analysis computes statistics over recorded move sequences.
package analysis

import (
	"github.com/SeamusWaldron/pocketcube"
)

// Summary contains comprehensive statistics for a single session.
type Summary struct {
	TotalMoves     int            `json:"total_moves"`
	CanonicalMoves int            `json:"canonical_moves"`
	Efficiency     float64        `json:"efficiency"`
	DurationMs     int64          `json:"duration_ms"`
	TPS            float64        `json:"tps"`
	LongestPauseMs int64          `json:"longest_pause_ms"`
	AvgGapMs       float64        `json:"avg_gap_ms"`
	FaceCounts     map[string]int `json:"face_counts"`
	CWCount        int            `json:"cw_count"`
	CCWCount       int            `json:"ccw_count"`
	MostUsedFace   string         `json:"most_used_face,omitempty"`
	LongestRun     int            `json:"longest_same_face_run"`
	Phases         []PhaseStat    `json:"phases,omitempty"`
}

// PhaseStat contains statistics for a single phase segment.
type PhaseStat struct {
	PhaseKey    string  `json:"phase_key"`
	DisplayName string  `json:"display_name"`
	StartTsMs   int64   `json:"start_ts_ms"`
	EndTsMs     int64   `json:"end_ts_ms"`
	DurationMs  int64   `json:"duration_ms"`
	MoveCount   int     `json:"move_count"`
	TPS         float64 `json:"tps"`
}

// PhaseMark is a phase transition timestamped relative to session start.
type PhaseMark struct {
	PhaseKey  string
	TsMs      int64
	MoveIndex int
}

// Summarize computes move statistics for one session. durationMs may be
// zero when the session never ended; timing stats are skipped then.
func Summarize(moves []pocketcube.Move, durationMs int64) *Summary {
	s := &Summary{
		TotalMoves: len(moves),
		DurationMs: durationMs,
		FaceCounts: make(map[string]int),
	}

	if len(moves) == 0 {
		return s
	}

	s.CanonicalMoves = len(pocketcube.Canonicalize(moves))
	s.Efficiency = float64(s.CanonicalMoves) / float64(s.TotalMoves)
	s.TPS = CalculateTPS(len(moves), durationMs)

	run := 1
	for i, m := range moves {
		s.FaceCounts[m.Face.String()]++
		if m.Turn == pocketcube.CW {
			s.CWCount++
		} else {
			s.CCWCount++
		}

		if i > 0 {
			if moves[i].Face == moves[i-1].Face {
				run++
			} else {
				run = 1
			}
		}
		if run > s.LongestRun {
			s.LongestRun = run
		}
	}

	maxCount := 0
	for _, f := range []pocketcube.Face{
		pocketcube.FaceU, pocketcube.FaceD, pocketcube.FaceF,
		pocketcube.FaceB, pocketcube.FaceR, pocketcube.FaceL,
	} {
		if c := s.FaceCounts[f.String()]; c > maxCount {
			maxCount = c
			s.MostUsedFace = f.String()
		}
	}

	s.LongestPauseMs = FindLongestPause(moves)
	s.AvgGapMs = CalculateAvgGap(moves)

	return s
}

// CalculateTPS calculates turns per second.
func CalculateTPS(moveCount int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(moveCount) / (float64(durationMs) / 1000.0)
}

// FindLongestPause finds the longest gap between consecutive moves.
// Moves without timestamps produce zero gaps.
func FindLongestPause(moves []pocketcube.Move) int64 {
	var longest int64

	for i := 1; i < len(moves); i++ {
		if moves[i].Time.IsZero() || moves[i-1].Time.IsZero() {
			continue
		}
		gap := moves[i].Time.Sub(moves[i-1].Time).Milliseconds()
		if gap > longest {
			longest = gap
		}
	}

	return longest
}

// CalculateAvgGap calculates the average time between moves in milliseconds.
func CalculateAvgGap(moves []pocketcube.Move) float64 {
	if len(moves) < 2 {
		return 0
	}
	first := moves[0].Time
	last := moves[len(moves)-1].Time
	if first.IsZero() || last.IsZero() {
		return 0
	}

	totalGap := last.Sub(first).Milliseconds()
	return float64(totalGap) / float64(len(moves)-1)
}

// Segments derives per-phase segments from phase marks. Each segment runs
// from its mark to the next mark (exclusive), the last one to the session
// end. Move counts use inclusive-start, exclusive-end timestamp bounds so
// a move on a boundary is never counted twice; the final segment includes
// its end so the last move is not dropped.
func Segments(marks []PhaseMark, moves []pocketcube.Move, startTime int64, endTsMs int64) []PhaseStat {
	if len(marks) == 0 {
		return nil
	}

	tsOf := make([]int64, len(moves))
	for i, m := range moves {
		if !m.Time.IsZero() {
			tsOf[i] = m.Time.UnixMilli() - startTime
		}
	}

	var stats []PhaseStat
	for i, mark := range marks {
		last := i == len(marks)-1
		segmentEnd := endTsMs
		if !last {
			segmentEnd = marks[i+1].TsMs
		}

		durationMs := segmentEnd - mark.TsMs
		if durationMs < 0 {
			continue
		}

		moveCount := 0
		for j := range moves {
			ts := tsOf[j]
			if ts < mark.TsMs {
				continue
			}
			if ts < segmentEnd || (last && ts <= segmentEnd) {
				moveCount++
			}
		}

		stats = append(stats, PhaseStat{
			PhaseKey:    mark.PhaseKey,
			DisplayName: phaseDisplayName(mark.PhaseKey),
			StartTsMs:   mark.TsMs,
			EndTsMs:     segmentEnd,
			DurationMs:  durationMs,
			MoveCount:   moveCount,
			TPS:         CalculateTPS(moveCount, durationMs),
		})
	}

	return stats
}

// phaseDisplayName maps a stored phase key back to its display form.
func phaseDisplayName(key string) string {
	for _, p := range pocketcube.AllPhases {
		if p.String() == key {
			return p.DisplayName()
		}
	}
	return key
}
