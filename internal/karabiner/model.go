// Package karabiner models Karabiner-Elements complex modifications and
// renders them in the JSON shape the application reads.
package karabiner

import "fmt"

const manipulatorBasic = "basic"

// ModifierKey names a modifier in a from or to event.
type ModifierKey string

const (
	ModifierAny     ModifierKey = "any"
	ModifierControl ModifierKey = "control"
	ModifierShift   ModifierKey = "shift"
	ModifierOption  ModifierKey = "option"
	ModifierCommand ModifierKey = "command"
)

// VirtualKey is a session variable used as a layer flag.
type VirtualKey string

const (
	VK1 VirtualKey = "vk1"
	VK2 VirtualKey = "vk2"
	VK3 VirtualKey = "vk3"
	VK4 VirtualKey = "vk4"
)

// VirtualKeys lists every layer flag in order.
var VirtualKeys = []VirtualKey{VK1, VK2, VK3, VK4}

// VariableValue is the boolean state of a session variable. It encodes as
// the integer 1 or 0.
type VariableValue int

const (
	Off VariableValue = 0
	On  VariableValue = 1
)

// MarshalJSON rejects anything other than On or Off.
func (v VariableValue) MarshalJSON() ([]byte, error) {
	switch v {
	case Off:
		return []byte("0"), nil
	case On:
		return []byte("1"), nil
	default:
		return nil, fmt.Errorf("variable value must be 0 or 1, got %d", int(v))
	}
}

// BundleIdentifier is the reverse-DNS identifier of a macOS application.
type BundleIdentifier string

const (
	AppITerm2   BundleIdentifier = "com.googlecode.iterm2"
	AppTerminal BundleIdentifier = "com.apple.Terminal"
	AppChrome   BundleIdentifier = "com.google.Chrome"
	AppSafari   BundleIdentifier = "com.apple.Safari"
	AppFirefox  BundleIdentifier = "org.mozilla.firefox"
	AppSlack    BundleIdentifier = "com.tinyspeck.slackmacgap"
	AppVSCode   BundleIdentifier = "com.microsoft.VSCode"
	AppIntelliJ BundleIdentifier = "com.jetbrains.intellij"
	AppFinder   BundleIdentifier = "com.apple.finder"
)

// PointingButton names a mouse button.
type PointingButton string

const (
	Button1 PointingButton = "button1"
	Button2 PointingButton = "button2"
	Button3 PointingButton = "button3"
)

// RulesFile is the document Karabiner-Elements imports from its
// complex_modifications asset directory.
type RulesFile struct {
	Title string `json:"title"`
	Rules []Rule `json:"rules"`
}

// MarshalJSON renders a nil rule list as an empty array.
func (f RulesFile) MarshalJSON() ([]byte, error) {
	type plain RulesFile
	if f.Rules == nil {
		f.Rules = []Rule{}
	}
	return marshalCompact(plain(f))
}

// Rule is a described group of manipulators.
type Rule struct {
	Description  string        `json:"description"`
	Manipulators []Manipulator `json:"manipulators"`
}

// MarshalJSON renders a nil manipulator list as an empty array.
func (r Rule) MarshalJSON() ([]byte, error) {
	type plain Rule
	if r.Manipulators == nil {
		r.Manipulators = []Manipulator{}
	}
	return marshalCompact(plain(r))
}

// Manipulator maps one trigger to zero or more actions. Conditions are
// ANDed. Empty optional lists are left out of the encoded object.
type Manipulator struct {
	Conditions   []Condition   `json:"conditions,omitempty"`
	From         KeyInput      `json:"from"`
	To           []Action      `json:"to,omitempty"`
	ToAfterKeyUp []SetVariable `json:"to_after_key_up,omitempty"`
	ToIfAlone    []SendKey     `json:"to_if_alone,omitempty"`
}

// MarshalJSON prefixes the object with the fixed "basic" type tag.
func (m Manipulator) MarshalJSON() ([]byte, error) {
	type plain Manipulator
	return marshalCompact(struct {
		Type string `json:"type"`
		plain
	}{Type: manipulatorBasic, plain: plain(m)})
}

// KeyInput is the physical key combination that triggers a manipulator.
type KeyInput struct {
	KeyCode   KeyCode   `json:"key_code"`
	Modifiers Modifiers `json:"modifiers,omitempty"`
}
