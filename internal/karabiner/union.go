package karabiner

// The types in this file encode without a discriminant field of their own:
// Karabiner-Elements tells the variants apart by which keys are present.

const (
	conditionFrontmostApplication = "frontmost_application_if"
	conditionVariable             = "variable_if"
)

// Condition guards a manipulator.
type Condition interface {
	condition()
}

// OnApplication holds while the frontmost application is one of
// BundleIdentifiers.
type OnApplication struct {
	BundleIdentifiers []BundleIdentifier
}

func (OnApplication) condition() {}

// MarshalJSON implements json.Marshaler.
func (c OnApplication) MarshalJSON() ([]byte, error) {
	ids := c.BundleIdentifiers
	if ids == nil {
		ids = []BundleIdentifier{}
	}
	return marshalCompact(struct {
		Type              string             `json:"type"`
		BundleIdentifiers []BundleIdentifier `json:"bundle_identifiers"`
	}{conditionFrontmostApplication, ids})
}

// OnVariable holds while the named session variable equals Value.
type OnVariable struct {
	Name  string
	Value VariableValue
}

func (OnVariable) condition() {}

// MarshalJSON implements json.Marshaler.
func (c OnVariable) MarshalJSON() ([]byte, error) {
	return marshalCompact(struct {
		Type  string        `json:"type"`
		Name  string        `json:"name"`
		Value VariableValue `json:"value"`
	}{conditionVariable, c.Name, c.Value})
}

// FrontmostApplication is shorthand for an OnApplication condition.
func FrontmostApplication(ids ...BundleIdentifier) OnApplication {
	return OnApplication{BundleIdentifiers: ids}
}

// LayerActive is the condition "vk is held".
func LayerActive(vk VirtualKey) OnVariable {
	return OnVariable{Name: string(vk), Value: On}
}

// LayerInactive is the condition "vk is not held".
func LayerInactive(vk VirtualKey) OnVariable {
	return OnVariable{Name: string(vk), Value: Off}
}

// Modifiers constrains the modifiers held with a trigger key.
type Modifiers interface {
	modifiers()
}

// Optional modifiers may be held but are not required.
type Optional []ModifierKey

func (Optional) modifiers() {}

// MarshalJSON implements json.Marshaler.
func (m Optional) MarshalJSON() ([]byte, error) {
	return marshalCompact(struct {
		Optional []ModifierKey `json:"optional"`
	}{nonNilModifiers(m)})
}

// Mandatory modifiers must be held exactly.
type Mandatory []ModifierKey

func (Mandatory) modifiers() {}

// MarshalJSON implements json.Marshaler.
func (m Mandatory) MarshalJSON() ([]byte, error) {
	return marshalCompact(struct {
		Mandatory []ModifierKey `json:"mandatory"`
	}{nonNilModifiers(m)})
}

func nonNilModifiers(mods []ModifierKey) []ModifierKey {
	if mods == nil {
		return []ModifierKey{}
	}
	return mods
}

// Action is one event emitted by a manipulator.
type Action interface {
	action()
}

// SetVariable assigns a session variable.
type SetVariable struct {
	Name  string
	Value VariableValue
}

func (SetVariable) action() {}

// MarshalJSON implements json.Marshaler.
func (a SetVariable) MarshalJSON() ([]byte, error) {
	type assignment struct {
		Name  string        `json:"name"`
		Value VariableValue `json:"value"`
	}
	return marshalCompact(struct {
		SetVariable assignment `json:"set_variable"`
	}{assignment{a.Name, a.Value}})
}

// SendKey emits a key, optionally with modifiers held.
type SendKey struct {
	KeyCode   KeyCode
	Modifiers []ModifierKey
}

func (SendKey) action() {}

// MarshalJSON implements json.Marshaler.
func (a SendKey) MarshalJSON() ([]byte, error) {
	return marshalCompact(struct {
		KeyCode   KeyCode       `json:"key_code"`
		Modifiers []ModifierKey `json:"modifiers,omitempty"`
	}{a.KeyCode, a.Modifiers})
}

// SendMouse moves the pointer or scrolls. Zero fields are omitted, so an
// explicit zero cannot be sent; Karabiner-Elements treats a missing field
// as zero.
type SendMouse struct {
	X             int
	Y             int
	VerticalWheel int
}

func (SendMouse) action() {}

// MarshalJSON implements json.Marshaler.
func (a SendMouse) MarshalJSON() ([]byte, error) {
	type mouseKey struct {
		X             int `json:"x,omitempty"`
		Y             int `json:"y,omitempty"`
		VerticalWheel int `json:"vertical_wheel,omitempty"`
	}
	return marshalCompact(struct {
		MouseKey mouseKey `json:"mouse_key"`
	}{mouseKey(a)})
}

// Click presses a pointing button.
type Click struct {
	Button PointingButton
}

func (Click) action() {}

// MarshalJSON implements json.Marshaler.
func (a Click) MarshalJSON() ([]byte, error) {
	return marshalCompact(struct {
		PointingButton PointingButton `json:"pointing_button"`
	}{a.Button})
}

// RunCommand runs a shell command.
type RunCommand struct {
	ShellCommand string
}

func (RunCommand) action() {}

// MarshalJSON implements json.Marshaler.
func (a RunCommand) MarshalJSON() ([]byte, error) {
	return marshalCompact(struct {
		ShellCommand string `json:"shell_command"`
	}{a.ShellCommand})
}

// Key is shorthand for a SendKey action.
func Key(code KeyCode, mods ...ModifierKey) SendKey {
	return SendKey{KeyCode: code, Modifiers: mods}
}

// Set is shorthand for a SetVariable action on a layer flag.
func Set(vk VirtualKey, value VariableValue) SetVariable {
	return SetVariable{Name: string(vk), Value: value}
}

// Shell is shorthand for a RunCommand action.
func Shell(command string) RunCommand {
	return RunCommand{ShellCommand: command}
}
