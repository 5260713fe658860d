package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thomasdavis/jumble/internal/solver"
	"github.com/thomasdavis/jumble/internal/storage"
	"github.com/thomasdavis/jumble/pkg/scrabble"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	jumbleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("205")).
			Foreground(lipgloss.Color("0"))

	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	bestWordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// Model is the interactive solver: edit the letter pool and watch the
// match list re-solve live.
type Model struct {
	solver       *solver.Solver
	gen          *scrabble.Generator
	store        *storage.Store // nil when history is unavailable
	jumble       string
	matches      []solver.Match
	jumbleLength int
	maxLength    int
	recorded     bool
	width        int
	height       int
}

// New builds the interactive model. An empty jumble gets an initial
// random one of jumbleLength letters.
func New(sv *solver.Solver, gen *scrabble.Generator, store *storage.Store, jumble string, jumbleLength, maxLength int) Model {
	m := Model{
		solver:       sv,
		gen:          gen,
		store:        store,
		jumble:       jumble,
		jumbleLength: jumbleLength,
		maxLength:    maxLength,
	}
	if m.jumble == "" {
		m.jumble = gen.Jumble(jumbleLength)
	}
	m.matches = sv.Solve(m.jumble)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.record()
			return m, tea.Quit

		case tea.KeyCtrlR:
			m.jumble = m.gen.Jumble(m.jumbleLength)
			m.resolve()
			return m, nil

		case tea.KeyBackspace:
			if len(m.jumble) > 0 {
				m.jumble = m.jumble[:len(m.jumble)-1]
				m.resolve()
			}
			return m, nil

		case tea.KeyRunes:
			for _, r := range msg.Runes {
				if len(m.jumble) >= m.maxLength {
					break
				}
				if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
					m.jumble += string(r)
				}
			}
			m.resolve()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m *Model) resolve() {
	m.matches = m.solver.Solve(m.jumble)
	m.recorded = false
}

// record writes the current solve to history once. History is
// best-effort; failures are dropped so quitting always succeeds.
func (m *Model) record() {
	if m.store == nil || m.recorded || m.jumble == "" {
		return
	}
	bestWord, bestScore := "", 0
	if len(m.matches) > 0 {
		bestWord, bestScore = m.matches[0].Word, m.matches[0].Score
	}
	_ = m.store.RecordSolve(m.jumble, len(m.matches), bestWord, bestScore)
	m.recorded = true
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎲 Jumble Solver"))
	b.WriteString("\n\n")

	pool := jumbleStyle.Render(m.jumble) + cursorStyle.Render(" ")
	b.WriteString(boxStyle.Render(labelStyle.Render("Letters: ") + pool))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Words:"))
	b.WriteString("\n")
	b.WriteString(m.renderMatches())

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type letters • backspace: remove • ctrl+r: new jumble • esc: quit"))

	return b.String()
}

func (m Model) renderMatches() string {
	if len(m.matches) == 0 {
		return emptyStyle.Render("no words found") + "\n"
	}

	var b strings.Builder
	for i, match := range m.matches {
		style := wordStyle
		if i == 0 {
			style = bestWordStyle
		}
		b.WriteString(fmt.Sprintf("%s %s\n",
			style.Render(fmt.Sprintf("%-20s", match.Word)),
			scoreStyle.Render(fmt.Sprintf("%d", match.Score)),
		))
	}
	return b.String()
}
