package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
)

var playScrambleLen int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube simulator",
	Long: `Start an interactive TUI simulator for the pocket cube.

Keyboard shortcuts:
  u/d/f/b/r/l - Clockwise turn of that face
  U/D/F/B/R/L - Counterclockwise turn (hold shift)
  s           - Scramble and start the timer
  z           - Undo the last move
  x           - Reset to solved
  q/Esc       - Quit

The display shows the cube net, the current solving phase, and the
move history as you solve.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&playScrambleLen, "scramble-length", "n", pocketcube.DefaultScrambleLength, "Number of moves in a scramble")
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type tickMsg time.Time

// keyMoves maps face keys to turns. Lowercase is clockwise, uppercase
// counterclockwise.
var keyMoves = map[string]pocketcube.Move{
	"u": pocketcube.U, "U": pocketcube.UPrime,
	"d": pocketcube.D, "D": pocketcube.DPrime,
	"f": pocketcube.F, "F": pocketcube.FPrime,
	"b": pocketcube.B, "B": pocketcube.BPrime,
	"r": pocketcube.R, "R": pocketcube.RPrime,
	"l": pocketcube.L, "L": pocketcube.LPrime,
}

// Model
type playModel struct {
	session *pocketcube.Session

	scrambleLen int
	scramble    []pocketcube.Move
	solving     bool
	startTime   time.Time
	elapsed     time.Duration
	flash       string

	width    int
	height   int
	quitting bool
}

func newPlayModel(scrambleLen int) *playModel {
	return &playModel{
		session:     pocketcube.NewSession(),
		scrambleLen: scrambleLen,
	}
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		m.flash = ""
		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "s":
			m.session.Reset()
			m.session.ClearHistory()
			m.scramble = m.session.Scramble(m.scrambleLen)
			// The scramble is not part of the solve
			m.session.ClearHistory()
			m.solving = true
			m.startTime = time.Now()
			m.elapsed = 0
			return m, nil

		case "z":
			if _, ok := m.session.Undo(); !ok {
				m.flash = "Nothing to undo"
			}
			return m, nil

		case "x":
			m.session.Reset()
			m.session.ClearHistory()
			m.scramble = nil
			m.solving = false
			m.elapsed = 0
			return m, nil
		}

		if move, ok := keyMoves[key]; ok {
			m.session.Apply(move)
			if m.solving && m.session.IsSolved() {
				m.elapsed = time.Since(m.startTime)
				m.solving = false
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.solving {
			m.elapsed = time.Since(m.startTime)
		}
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Pocket Cube Simulator"))
	b.WriteString("\n\n")

	state := m.session.State()
	b.WriteString(renderNet(state))
	b.WriteString("\n")

	if m.solving {
		b.WriteString(phaseStyle.Render(fmt.Sprintf("SOLVING: %s", formatDuration(m.elapsed))))
		b.WriteString("\n")
		b.WriteString(renderPhase(state))
		b.WriteString("\n")
	} else if state.IsSolved() && m.elapsed > 0 {
		b.WriteString(phaseStyle.Render("SOLVED"))
		b.WriteString(statusStyle.Render(fmt.Sprintf("  %s, %d moves", formatDuration(m.elapsed), len(m.session.Moves()))))
		b.WriteString("\n")
	} else {
		b.WriteString(renderPhase(state))
		b.WriteString("\n")
	}

	if len(m.scramble) > 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Scramble: %s", pocketcube.FormatMoves(m.scramble))))
		b.WriteString("\n")
	}

	moves := m.session.Moves()
	b.WriteString(fmt.Sprintf("Moves: %d\n", len(moves)))

	// Recent moves
	if len(moves) > 0 {
		b.WriteString("History: ")
		start := 0
		if len(moves) > 20 {
			start = len(moves) - 20
			b.WriteString("... ")
		}
		var notations []string
		for i := start; i < len(moves); i++ {
			notations = append(notations, moves[i].Notation())
		}
		b.WriteString(moveStyle.Render(strings.Join(notations, " ")))
		b.WriteString("\n")
	}

	if m.flash != "" {
		b.WriteString(errorStyle.Render(m.flash))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: u/d/f/b/r/l=turn (shift=counterclockwise)  s=scramble  z=undo  x=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	n := playScrambleLen
	if !cmd.Flags().Changed("scramble-length") && cfg != nil && cfg.ScrambleLength > 0 {
		n = cfg.ScrambleLength
	}

	model := newPlayModel(n)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
