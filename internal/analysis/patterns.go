package analysis

import (
	"sort"

	"github.com/SeamusWaldron/pocketcube"
)

// Pattern represents a repeated move sequence.
type Pattern struct {
	N           int      `json:"n"`
	Sequence    []string `json:"sequence"`
	tokens      []uint8
	Count       int   `json:"count"`
	Occurrences []int `json:"occurrences,omitempty"`
}

// PatternReport contains the results of pattern mining, keyed by length.
type PatternReport struct {
	TopPatterns map[int][]Pattern `json:"top_patterns"`
}

// RollingHash implements a Rabin-Karp rolling hash for pattern detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint8
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31, // Prime base
		n:      n,
		window: make([]uint8, 0, n),
	}

	// Precompute base^(n-1)
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Add adds a token to the rolling hash.
func (rh *RollingHash) Add(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
	}
}

// Roll removes the oldest token and adds a new one.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.Add(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	// Shift window
	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	result := make([]uint8, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// moveToken packs a move into one byte: face index times two, plus one
// for counter-clockwise.
func moveToken(m pocketcube.Move) uint8 {
	t := uint8(int(m.Face) * 2)
	if m.Turn == pocketcube.CCW {
		t++
	}
	return t
}

// tokenMove is the inverse of moveToken.
func tokenMove(t uint8) pocketcube.Move {
	m := pocketcube.Move{Face: pocketcube.Face(t / 2), Turn: pocketcube.CW}
	if t%2 == 1 {
		m.Turn = pocketcube.CCW
	}
	return m
}

// patternEntry tracks occurrences during mining.
type patternEntry struct {
	tokens      []uint8
	count       int
	occurrences []int
}

// MinePatterns finds the top-K most frequent move patterns for each
// length n in [minN, maxN]. Only patterns that repeat are reported.
func MinePatterns(moves []pocketcube.Move, minN, maxN, topK int) *PatternReport {
	report := &PatternReport{
		TopPatterns: make(map[int][]Pattern),
	}

	if len(moves) < minN {
		return report
	}

	tokens := make([]uint8, len(moves))
	for i, m := range moves {
		tokens[i] = moveToken(m)
	}

	for n := minN; n <= maxN && n <= len(moves); n++ {
		patterns := minePatternsForN(tokens, n, topK)
		if len(patterns) > 0 {
			report.TopPatterns[n] = patterns
		}
	}

	return report
}

// minePatternsForN mines patterns of a specific length.
func minePatternsForN(tokens []uint8, n, topK int) []Pattern {
	counts := make(map[uint64]*patternEntry)

	rh := NewRollingHash(n)
	for i, token := range tokens {
		rh.Roll(token)
		if !rh.Ready() {
			continue
		}

		startIdx := i - n + 1
		hash := rh.Hash()

		if entry, ok := counts[hash]; ok {
			window := rh.Window()
			if slicesEqual(entry.tokens, window) {
				entry.count++
				if len(entry.occurrences) < 10 {
					entry.occurrences = append(entry.occurrences, startIdx)
				}
			}
		} else {
			counts[hash] = &patternEntry{
				tokens:      rh.Window(),
				count:       1,
				occurrences: []int{startIdx},
			}
		}
	}

	// Keep patterns that appear more than once, sorted by frequency
	entries := make([]*patternEntry, 0, len(counts))
	for _, entry := range counts {
		if entry.count >= 2 {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]Pattern, len(entries))
	for i, entry := range entries {
		sequence := make([]string, len(entry.tokens))
		for j, token := range entry.tokens {
			sequence[j] = tokenMove(token).Notation()
		}

		result[i] = Pattern{
			N:           n,
			Sequence:    sequence,
			tokens:      entry.tokens,
			Count:       entry.count,
			Occurrences: entry.occurrences,
		}
	}

	return result
}

// slicesEqual compares two uint8 slices.
func slicesEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
