package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hyprpal/kbgen/internal/ui/tui"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
)

// View implements tea.Model.
func (m Model) View() string {
	width := m.WindowSize.Width
	if width < 40 {
		width = 80
	}
	height := m.WindowSize.Height
	if height < 10 {
		height = 24
	}
	leftWidth := width/2 - 2
	rightWidth := width - leftWidth - 4
	interior := height - 6

	var list strings.Builder
	list.WriteString(headerStyle.Render("Rules"))
	list.WriteString("\n\n")
	if len(m.Visible) == 0 {
		list.WriteString(dimStyle.Render("  (no matching rules)"))
		list.WriteByte('\n')
	}
	start, end := window(m.Selected, len(m.Visible), interior-2)
	for i := start; i < end; i++ {
		rule := m.Rules[m.Visible[i]]
		line := fmt.Sprintf("%s (%d)", tui.DescribeRule(rule), len(rule.Manipulators))
		if i == m.Selected {
			list.WriteString(selectedStyle.Render("> " + line))
		} else {
			list.WriteString(normalStyle.Render("  " + line))
		}
		list.WriteByte('\n')
	}

	left := boxStyle.Width(leftWidth).Height(interior).Render(list.String())
	right := boxStyle.Width(rightWidth).Height(interior).Render(m.Details.View())

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) footer() string {
	if m.Filtering {
		return "filter: " + m.Filter.View()
	}
	status := fmt.Sprintf("%d/%d rules", len(m.Visible), len(m.Rules))
	if v := m.Filter.Value(); v != "" {
		status += fmt.Sprintf(" matching %q", v)
	}
	return dimStyle.Render(status + "  j/k move  / filter  pgup/pgdn scroll  q quit")
}

func (m Model) renderDetails() string {
	rule, ok := m.Current()
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(tui.DescribeRule(rule)))
	b.WriteString("\n\n")
	if len(rule.Manipulators) == 0 {
		b.WriteString(dimStyle.Render("no manipulators"))
		b.WriteByte('\n')
		return b.String()
	}
	for i, man := range rule.Manipulators {
		fmt.Fprintf(&b, "%d. %s\n", i+1, tui.FormatKeyInput(man.From))
		for _, c := range man.Conditions {
			fmt.Fprintf(&b, "   when  %s\n", tui.FormatCondition(c))
		}
		for _, a := range man.To {
			fmt.Fprintf(&b, "   to    %s\n", tui.FormatAction(a))
		}
		for _, a := range man.ToAfterKeyUp {
			fmt.Fprintf(&b, "   up    %s\n", tui.FormatAction(a))
		}
		for _, a := range man.ToIfAlone {
			fmt.Fprintf(&b, "   alone %s\n", tui.FormatAction(a))
		}
	}
	return b.String()
}

// window returns the slice of n items of height rows that keeps selected
// visible.
func window(selected, n, rows int) (int, int) {
	if rows < 1 {
		rows = 1
	}
	if n <= rows {
		return 0, n
	}
	start := selected - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}
