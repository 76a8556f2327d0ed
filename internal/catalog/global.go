package catalog

import k "github.com/hyprpal/kbgen/internal/karabiner"

func globalRules() []k.Rule {
	return []k.Rule{
		{
			Description: "Caps Lock to Control, Escape when tapped",
			Manipulators: []k.Manipulator{
				k.NewManipulator().
					FromOptional(k.KeyCapsLock, k.ModifierAny).
					To(k.Key(k.KeyLeftControl)).
					ToIfAlone(k.Key(k.KeyEscape)).
					Build(),
			},
		},
		{
			Description: "Command alone switches input source",
			Manipulators: []k.Manipulator{
				k.NewManipulator().
					FromOptional(k.KeyLeftCommand, k.ModifierAny).
					To(k.Key(k.KeyLeftCommand)).
					ToIfAlone(k.Key(k.KeyJapaneseEisuu)).
					Build(),
				k.NewManipulator().
					FromOptional(k.KeyRightCommand, k.ModifierAny).
					To(k.Key(k.KeyRightCommand)).
					ToIfAlone(k.Key(k.KeyJapaneseKana)).
					Build(),
			},
		},
		{
			Description: "Shift+Escape to tilde",
			Manipulators: []k.Manipulator{
				k.NewManipulator().
					FromMandatory(k.KeyEscape, k.ModifierShift).
					To(k.Key(k.KeyGraveAccentAndTilde, k.ModifierShift)).
					Build(),
				k.NewManipulator().
					FromMandatory(k.KeyEscape, k.ModifierCommand).
					To(k.Key(k.KeyGraveAccentAndTilde, k.ModifierCommand)).
					Build(),
			},
		},
		{
			Description: "Control+[ to Escape",
			Manipulators: []k.Manipulator{
				k.NewManipulator().
					FromMandatory(k.KeyOpenBracket, k.ModifierControl).
					To(k.Key(k.KeyEscape)).
					Build(),
			},
		},
	}
}

// Layer switches. Each key keeps its normal meaning when tapped.
var triggers = []struct {
	vk    k.VirtualKey
	key   k.KeyCode
	label string
}{
	{k.VK1, k.KeySemicolon, "Semicolon"},
	{k.VK2, k.KeyTab, "Tab"},
	{k.VK3, k.KeyQuote, "Quote"},
	{k.VK4, k.KeyRightOption, "Right Option"},
}

func triggerRules() []k.Rule {
	rules := make([]k.Rule, 0, len(triggers))
	for _, t := range triggers {
		rules = append(rules, k.Rule{
			Description: t.label + " held is " + string(t.vk),
			Manipulators: []k.Manipulator{
				k.VirtualKeyTrigger(t.vk, t.key, t.key),
			},
		})
	}
	return rules
}
