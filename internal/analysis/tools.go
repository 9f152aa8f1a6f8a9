package analysis

import (
	"github.com/SeamusWaldron/pocketcube"
)

// Tool represents a known short algorithm worth spotting in a move stream.
type Tool struct {
	Name     string
	Sequence []pocketcube.Move
}

var (
	// Sexy: R U R' U'
	SexyTool = Tool{Name: "Sexy Move", Sequence: pocketcube.SexyMove}

	// Inverse sexy: U R U' R'
	InverseSexyTool = Tool{Name: "Inverse Sexy", Sequence: pocketcube.InverseSexyMove}

	// Sledgehammer: R' F R F'
	SledgehammerTool = Tool{Name: "Sledgehammer", Sequence: pocketcube.Sledgehammer}

	// Sune: R U R' U R U2 R' - the standard last-face orientation tool
	SuneTool = Tool{Name: "Sune", Sequence: []pocketcube.Move{
		pocketcube.R, pocketcube.U, pocketcube.RPrime, pocketcube.U,
		pocketcube.R, pocketcube.U, pocketcube.U, pocketcube.RPrime,
	}}
)

// AllTools is a list of all known tools, longest first so the scan
// prefers the most specific match.
var AllTools = []Tool{SuneTool, SexyTool, InverseSexyTool, SledgehammerTool}

// ToolMatch represents a detected tool usage.
type ToolMatch struct {
	ToolName   string `json:"tool_name"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
}

// ToolReport summarizes algorithm usage in a move sequence.
type ToolReport struct {
	Counts         map[string]int `json:"counts"`
	Matches        []ToolMatch    `json:"matches"`
	UnmatchedMoves int            `json:"unmatched_moves"`
}

// DetectTools finds non-overlapping tool usages in a move sequence,
// scanning left to right and preferring longer tools at each position.
func DetectTools(moves []pocketcube.Move) *ToolReport {
	report := &ToolReport{
		Counts:  make(map[string]int),
		Matches: []ToolMatch{},
	}

	matched := make([]bool, len(moves))

	for i := 0; i < len(moves); i++ {
		if matched[i] {
			continue
		}

		for _, tool := range AllTools {
			if !matchesTool(moves, i, tool.Sequence) {
				continue
			}

			end := i + len(tool.Sequence) - 1
			report.Matches = append(report.Matches, ToolMatch{
				ToolName:   tool.Name,
				StartIndex: i,
				EndIndex:   end,
			})
			report.Counts[tool.Name]++

			for j := i; j <= end; j++ {
				matched[j] = true
			}
			i = end
			break
		}
	}

	for _, m := range matched {
		if !m {
			report.UnmatchedMoves++
		}
	}

	return report
}

// matchesTool checks if the move sequence starting at startIdx matches the tool.
func matchesTool(moves []pocketcube.Move, startIdx int, tool []pocketcube.Move) bool {
	if startIdx+len(tool) > len(moves) {
		return false
	}

	for i, t := range tool {
		m := moves[startIdx+i]
		if m.Face != t.Face || m.Turn != t.Turn {
			return false
		}
	}

	return true
}
