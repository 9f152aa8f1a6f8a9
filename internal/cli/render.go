package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/pocketcube"
)

// Facelet colors for the terminal net display.
var faceletStyles = map[pocketcube.Color]lipgloss.Style{
	pocketcube.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	pocketcube.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	pocketcube.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	pocketcube.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	pocketcube.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	pocketcube.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
}

func renderFacelet(c pocketcube.Color) string {
	if style, ok := faceletStyles[c]; ok {
		return style.Render(c.String())
	}
	return c.String()
}

// renderNet draws the cube as an unfolded net with colored facelets.
func renderNet(state pocketcube.State) string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 2; row++ {
		b.WriteString("    ")
		for col := 0; col < 2; col++ {
			b.WriteString(renderFacelet(state.Facelets[pocketcube.FaceU][row*2+col]))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 2; row++ {
		for _, face := range []pocketcube.Face{pocketcube.FaceL, pocketcube.FaceF, pocketcube.FaceR, pocketcube.FaceB} {
			for col := 0; col < 2; col++ {
				b.WriteString(renderFacelet(state.Facelets[face][row*2+col]))
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 2; row++ {
		b.WriteString("    ")
		for col := 0; col < 2; col++ {
			b.WriteString(renderFacelet(state.Facelets[pocketcube.FaceD][row*2+col]))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderPhase returns a one-line progress description for the state.
func renderPhase(state pocketcube.State) string {
	if state.IsSolved() {
		return phaseStyle.Render("SOLVED")
	}
	return fmt.Sprintf("Phase: %s", phaseStyle.Render(state.DetectPhase().DisplayName()))
}
