// Package tui provides a terminal user interface for music-types
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/max-kay/music-types/pkg/harmony"
)

var (
	staffBlue  = lipgloss.Color("#5FAFFF")
	inkWhite   = lipgloss.Color("#EEEEEE")
	errorRed   = lipgloss.Color("#FF5F5F")
	mutedGray  = lipgloss.Color("#666666")
	darkGray   = lipgloss.Color("#333333")
	resultGold = lipgloss.Color("#FFD75F")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(staffBlue).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(inkWhite).
			PaddingLeft(2)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(staffBlue).
				Bold(true).
				PaddingLeft(2)

	resultStyle = lipgloss.NewStyle().
			Foreground(resultGold).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorRed)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(staffBlue).
			Padding(1, 2)
)

const (
	fieldPitch = iota
	fieldInterval
	fieldCount
)

// Model represents the TUI model
type Model struct {
	inputs  [fieldCount]textinput.Model
	focused int
	width   int
}

// New creates a new TUI model
func New() Model {
	pitch := textinput.New()
	pitch.Placeholder = "C4"
	pitch.CharLimit = 32
	pitch.Width = 24
	pitch.Focus()

	interval := textinput.New()
	interval.Placeholder = "Major3"
	interval.CharLimit = 64
	interval.Width = 24

	return Model{inputs: [fieldCount]textinput.Model{pitch, interval}}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab", "enter", "up", "down":
			if msg.String() == "shift+tab" || msg.String() == "up" {
				m.focused = (m.focused + fieldCount - 1) % fieldCount
			} else {
				m.focused = (m.focused + 1) % fieldCount
			}
			for n := range m.inputs {
				if n == m.focused {
					m.inputs[n].Focus()
				} else {
					m.inputs[n].Blur()
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" MUSIC TYPES — TRANSPOSER "))
	s.WriteString("\n\n")

	labels := [fieldCount]string{"Pitch", "Interval"}
	for n, in := range m.inputs {
		style := labelStyle
		if n == m.focused {
			style = focusedLabelStyle
		}
		s.WriteString(style.Render(fmt.Sprintf("%-9s", labels[n])))
		s.WriteString(in.View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.viewResult())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("tab: switch field • esc: quit"))

	return boxStyle.Render(s.String())
}

func (m Model) viewResult() string {
	pitchText := m.inputs[fieldPitch].Value()
	intervalText := m.inputs[fieldInterval].Value()
	if pitchText == "" {
		return helpStyle.Render("enter a pitch, e.g. C4 or F#3")
	}

	p, err := harmony.ParsePitch(pitchText)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("✗ %v", err))
	}

	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s  %.2f Hz", resultStyle.Render(p.String()), p.Frequency()))
	if key, ok := p.Chromatic().MIDI(); ok {
		s.WriteString(fmt.Sprintf("  midi %d", key))
	}
	s.WriteString("\n")

	if intervalText == "" {
		s.WriteString(helpStyle.Render("enter an interval, e.g. Major3 or -Perfect5"))
		return s.String()
	}
	i, err := harmony.ParseInterval(intervalText)
	if err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ %v", err)))
		return s.String()
	}

	out := p.Transpose(i)
	s.WriteString(fmt.Sprintf("+ %s (%d semitones)\n", i, int(i.Chromatic())))
	s.WriteString(fmt.Sprintf("= %s  %.2f Hz", resultStyle.Render(out.String()), out.Frequency()))
	return s.String()
}

// Run starts the TUI application
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
