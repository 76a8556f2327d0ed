package catalog

import k "github.com/hyprpal/kbgen/internal/karabiner"

var ctrl = mods(k.ModifierControl)

func applicationRules() []k.Rule {
	return []k.Rule{
		{
			Description: "Terminals: Control+h/l switch tabs",
			Manipulators: appsTable([]k.BundleIdentifier{k.AppITerm2, k.AppTerminal}, ctrl, []remap{
				{from: k.KeyH, to: k.KeyOpenBracket, mods: mods(k.ModifierCommand, k.ModifierShift)},
				{from: k.KeyL, to: k.KeyCloseBracket, mods: mods(k.ModifierCommand, k.ModifierShift)},
			}),
		},
		{
			Description: "iTerm2: Control+t new tab, Control+w close pane",
			Manipulators: appTable(k.AppITerm2, ctrl, []remap{
				{from: k.KeyT, to: k.KeyT, mods: mods(k.ModifierCommand)},
				{from: k.KeyW, to: k.KeyW, mods: mods(k.ModifierCommand)},
				{from: k.KeyD, to: k.KeyD, mods: mods(k.ModifierCommand)},
			}),
		},
		{
			Description: "Browsers: Control+h/l switch tabs, Control+r reload",
			Manipulators: appsTable([]k.BundleIdentifier{k.AppChrome, k.AppSafari, k.AppFirefox}, ctrl, []remap{
				{from: k.KeyH, to: k.KeyLeftArrow, mods: mods(k.ModifierCommand, k.ModifierOption)},
				{from: k.KeyL, to: k.KeyRightArrow, mods: mods(k.ModifierCommand, k.ModifierOption)},
				{from: k.KeyR, to: k.KeyR, mods: mods(k.ModifierCommand)},
				{from: k.KeyT, to: k.KeyT, mods: mods(k.ModifierCommand)},
				{from: k.KeyW, to: k.KeyW, mods: mods(k.ModifierCommand)},
			}),
		},
		{
			Description: "Chrome: Control+Shift+j developer tools",
			Manipulators: []k.Manipulator{
				k.NewManipulator().
					When(k.FrontmostApplication(k.AppChrome)).
					FromMandatory(k.KeyJ, k.ModifierControl, k.ModifierShift).
					To(k.Key(k.KeyI, k.ModifierCommand, k.ModifierOption)).
					Build(),
			},
		},
		{
			Description: "Slack: Control+k switcher, Control+n/p next/previous channel",
			Manipulators: appTable(k.AppSlack, ctrl, []remap{
				{from: k.KeyK, to: k.KeyK, mods: mods(k.ModifierCommand)},
				{from: k.KeyN, to: k.KeyDownArrow, mods: mods(k.ModifierOption)},
				{from: k.KeyP, to: k.KeyUpArrow, mods: mods(k.ModifierOption)},
			}),
		},
		{
			Description: "Editors: Control+p quick open, Control+Shift+p command palette",
			Manipulators: append(
				appsTable([]k.BundleIdentifier{k.AppVSCode, k.AppIntelliJ}, ctrl, []remap{
					{from: k.KeyP, to: k.KeyP, mods: mods(k.ModifierCommand)},
				}),
				appsTable([]k.BundleIdentifier{k.AppVSCode}, mods(k.ModifierControl, k.ModifierShift), []remap{
					{from: k.KeyP, to: k.KeyP, mods: mods(k.ModifierCommand, k.ModifierShift)},
				})...,
			),
		},
		{
			Description: "Finder: Return opens, F2 renames",
			Manipulators: []k.Manipulator{
				k.NewManipulator().
					When(k.FrontmostApplication(k.AppFinder)).
					When(k.LayerInactive(k.VK4)).
					From(k.KeyReturnOrEnter).
					To(k.Key(k.KeyDownArrow, k.ModifierCommand)).
					Build(),
				k.NewManipulator().
					When(k.FrontmostApplication(k.AppFinder)).
					From(k.KeyF2).
					To(k.Key(k.KeyReturnOrEnter)).
					Build(),
				k.NewManipulator().
					When(k.FrontmostApplication(k.AppFinder)).
					FromMandatory(k.KeyDeleteOrBackspace, k.ModifierControl).
					To(k.Key(k.KeyDeleteOrBackspace, k.ModifierCommand)).
					Build(),
			},
		},
	}
}

func appsTable(apps []k.BundleIdentifier, trigger []k.ModifierKey, table []remap) []k.Manipulator {
	out := make([]k.Manipulator, 0, len(table))
	for _, r := range table {
		out = append(out, k.NewManipulator().
			When(k.FrontmostApplication(apps...)).
			FromMandatory(r.from, trigger...).
			To(k.Key(r.to, r.mods...)).
			Build())
	}
	return out
}

func appTable(app k.BundleIdentifier, trigger []k.ModifierKey, table []remap) []k.Manipulator {
	return appsTable([]k.BundleIdentifier{app}, trigger, table)
}
