// Package browse is an interactive viewer for a generated rule set.
package browse

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hyprpal/kbgen/internal/karabiner"
)

// Model holds the browser state.
type Model struct {
	Title string
	Rules []karabiner.Rule

	// Indices into Rules that match the filter, in order.
	Visible  []int
	Selected int

	Filtering bool
	Filter    textinput.Model

	Details    viewport.Model
	WindowSize tea.WindowSizeMsg
}

// New returns a browser over rules.
func New(title string, rules []karabiner.Rule) Model {
	ti := textinput.New()
	ti.Placeholder = "description..."
	ti.CharLimit = 64
	ti.Width = 24

	m := Model{
		Title:   title,
		Rules:   rules,
		Filter:  ti,
		Details: viewport.New(80, 20),
	}
	m.applyFilter()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Current returns the selected rule.
func (m Model) Current() (karabiner.Rule, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Visible) {
		return karabiner.Rule{}, false
	}
	return m.Rules[m.Visible[m.Selected]], true
}

// Run starts a full-screen browser and blocks until the user quits.
func Run(title string, rules []karabiner.Rule) error {
	_, err := tea.NewProgram(New(title, rules), tea.WithAltScreen()).Run()
	return err
}
