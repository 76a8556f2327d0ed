package browse

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Details.Width = msg.Width / 2
		m.Details.Height = msg.Height - 4
		m.refreshDetails()
		return m, nil

	case tea.KeyMsg:
		if m.Filtering {
			switch msg.Type {
			case tea.KeyEnter:
				m.Filtering = false
				m.Filter.Blur()
				return m, nil
			case tea.KeyEsc:
				m.Filtering = false
				m.Filter.Blur()
				m.Filter.SetValue("")
				m.applyFilter()
				return m, nil
			}
			m.Filter, cmd = m.Filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.Filter.Value() != "" {
				m.Filter.SetValue("")
				m.applyFilter()
			}
		case "up", "k":
			if m.Selected > 0 {
				m.Selected--
				m.refreshDetails()
			}
		case "down", "j":
			if m.Selected < len(m.Visible)-1 {
				m.Selected++
				m.refreshDetails()
			}
		case "home", "g":
			m.Selected = 0
			m.refreshDetails()
		case "end", "G":
			if len(m.Visible) > 0 {
				m.Selected = len(m.Visible) - 1
				m.refreshDetails()
			}
		case "pgdown", "ctrl+d":
			m.Details.HalfViewDown()
		case "pgup", "ctrl+u":
			m.Details.HalfViewUp()
		case "/":
			m.Filtering = true
			m.Filter.Focus()
			return m, textinput.Blink
		}
	}

	return m, cmd
}

func (m *Model) applyFilter() {
	term := strings.ToLower(strings.TrimSpace(m.Filter.Value()))
	visible := make([]int, 0, len(m.Rules))
	for i, rule := range m.Rules {
		if term == "" || strings.Contains(strings.ToLower(rule.Description), term) {
			visible = append(visible, i)
		}
	}
	m.Visible = visible
	if m.Selected >= len(m.Visible) {
		m.Selected = len(m.Visible) - 1
	}
	if m.Selected < 0 {
		m.Selected = 0
	}
	m.refreshDetails()
}

func (m *Model) refreshDetails() {
	m.Details.SetContent(m.renderDetails())
	m.Details.GotoTop()
}
