// Package tui renders rule sets as plain-text tables.
package tui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/hyprpal/kbgen/internal/karabiner"
)

const actionWidth = 56

// Summary writes one row per manipulator of rules, grouped under each rule's
// description.
func Summary(w io.Writer, rules []karabiner.Rule) error {
	if len(rules) == 0 {
		_, err := fmt.Fprintln(w, "(no rules)")
		return err
	}
	total := 0
	for i, rule := range rules {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s (%d)\n", DescribeRule(rule), len(rule.Manipulators)); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  From\tWhen\tTo")
		for _, m := range rule.Manipulators {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", FormatKeyInput(m.From), formatConditions(m.Conditions), truncate(formatEffects(m), actionWidth))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		total += len(rule.Manipulators)
	}
	_, err := fmt.Fprintf(w, "\n%d rules, %d manipulators\n", len(rules), total)
	return err
}

// DescribeRule returns the rule's description or a placeholder.
func DescribeRule(rule karabiner.Rule) string {
	if strings.TrimSpace(rule.Description) == "" {
		return "(untitled rule)"
	}
	return rule.Description
}

// FormatKeyInput renders a trigger such as "caps_lock" or
// "command+escape" or "h (any)".
func FormatKeyInput(in karabiner.KeyInput) string {
	switch mods := in.Modifiers.(type) {
	case karabiner.Mandatory:
		if len(mods) == 0 {
			return string(in.KeyCode)
		}
		return joinModifiers(mods) + "+" + string(in.KeyCode)
	case karabiner.Optional:
		if len(mods) == 0 {
			return string(in.KeyCode)
		}
		return fmt.Sprintf("%s (%s)", in.KeyCode, joinModifiers(mods))
	default:
		return string(in.KeyCode)
	}
}

// FormatCondition renders one condition.
func FormatCondition(c karabiner.Condition) string {
	switch cond := c.(type) {
	case karabiner.OnApplication:
		ids := make([]string, 0, len(cond.BundleIdentifiers))
		for _, id := range cond.BundleIdentifiers {
			ids = append(ids, string(id))
		}
		return "app in [" + strings.Join(ids, ", ") + "]"
	case karabiner.OnVariable:
		return fmt.Sprintf("%s=%d", cond.Name, int(cond.Value))
	default:
		return fmt.Sprintf("%T", c)
	}
}

// FormatAction renders one emitted event.
func FormatAction(a karabiner.Action) string {
	switch act := a.(type) {
	case karabiner.SendKey:
		if len(act.Modifiers) == 0 {
			return string(act.KeyCode)
		}
		return joinModifiers(act.Modifiers) + "+" + string(act.KeyCode)
	case karabiner.SetVariable:
		return fmt.Sprintf("set %s=%d", act.Name, int(act.Value))
	case karabiner.SendMouse:
		var parts []string
		if act.X != 0 {
			parts = append(parts, fmt.Sprintf("x%+d", act.X))
		}
		if act.Y != 0 {
			parts = append(parts, fmt.Sprintf("y%+d", act.Y))
		}
		if act.VerticalWheel != 0 {
			parts = append(parts, fmt.Sprintf("wheel%+d", act.VerticalWheel))
		}
		return "mouse " + strings.Join(parts, " ")
	case karabiner.Click:
		return "click " + string(act.Button)
	case karabiner.RunCommand:
		return "$ " + act.ShellCommand
	default:
		return fmt.Sprintf("%T", a)
	}
}

func formatConditions(conds []karabiner.Condition) string {
	if len(conds) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		parts = append(parts, FormatCondition(c))
	}
	return strings.Join(parts, ", ")
}

func formatEffects(m karabiner.Manipulator) string {
	var parts []string
	for _, a := range m.To {
		parts = append(parts, FormatAction(a))
	}
	for _, a := range m.ToAfterKeyUp {
		parts = append(parts, "up: "+FormatAction(a))
	}
	for _, a := range m.ToIfAlone {
		parts = append(parts, "alone: "+FormatAction(a))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "; ")
}

func joinModifiers(mods []karabiner.ModifierKey) string {
	names := make([]string, 0, len(mods))
	for _, m := range mods {
		names = append(names, string(m))
	}
	return strings.Join(names, "+")
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
