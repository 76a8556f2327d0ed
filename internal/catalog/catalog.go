// Package catalog holds the hand-written rule set kbgen installs.
//
// Rules are grouped the way they are read in the Karabiner-Elements UI:
// global remaps first, then the keys that switch virtual-key layers, then
// one group per layer, then application-specific rules. The order has no
// effect on matching because every manipulator carries its own conditions.
package catalog

import "github.com/hyprpal/kbgen/internal/karabiner"

// Title is the title of the generated rules document.
const Title = "Personal rules (kbgen)"

// Rules returns the full rule set in output order.
func Rules() []karabiner.Rule {
	var rules []karabiner.Rule
	rules = append(rules, globalRules()...)
	rules = append(rules, triggerRules()...)
	rules = append(rules, layerRules()...)
	rules = append(rules, applicationRules()...)
	return rules
}

// File wraps Rules in the importable document.
func File() karabiner.RulesFile {
	return karabiner.RulesFile{Title: Title, Rules: Rules()}
}

// remap is one (from, to) entry in a generator table.
type remap struct {
	from karabiner.KeyCode
	to   karabiner.KeyCode
	mods []karabiner.ModifierKey
}

func layerTable(vk karabiner.VirtualKey, table []remap) []karabiner.Manipulator {
	out := make([]karabiner.Manipulator, 0, len(table))
	for _, r := range table {
		out = append(out, karabiner.LayerRemap(vk, r.from, r.to, r.mods...))
	}
	return out
}

func mods(keys ...karabiner.ModifierKey) []karabiner.ModifierKey { return keys }
