package karabiner

// Builder assembles a Manipulator. The zero value is not usable; start from
// NewManipulator. Conditions, actions and the two tap/release lists default
// to empty and are omitted from the encoded manipulator when left that way.
type Builder struct {
	m       Manipulator
	hasFrom bool
}

// NewManipulator starts a basic manipulator.
func NewManipulator() *Builder {
	return &Builder{}
}

// When appends a condition. Conditions are ANDed.
func (b *Builder) When(c Condition) *Builder {
	b.m.Conditions = append(b.m.Conditions, c)
	return b
}

// From sets a trigger key with no modifier constraint.
func (b *Builder) From(code KeyCode) *Builder {
	b.m.From = KeyInput{KeyCode: code}
	b.hasFrom = true
	return b
}

// FromOptional sets a trigger key that may be pressed with mods held.
func (b *Builder) FromOptional(code KeyCode, mods ...ModifierKey) *Builder {
	b.m.From = KeyInput{KeyCode: code, Modifiers: Optional(mods)}
	b.hasFrom = true
	return b
}

// FromMandatory sets a trigger key that requires exactly mods.
func (b *Builder) FromMandatory(code KeyCode, mods ...ModifierKey) *Builder {
	b.m.From = KeyInput{KeyCode: code, Modifiers: Mandatory(mods)}
	b.hasFrom = true
	return b
}

// To appends actions run in order on key down.
func (b *Builder) To(actions ...Action) *Builder {
	b.m.To = append(b.m.To, actions...)
	return b
}

// ToAfterKeyUp appends variable assignments applied on release.
func (b *Builder) ToAfterKeyUp(assignments ...SetVariable) *Builder {
	b.m.ToAfterKeyUp = append(b.m.ToAfterKeyUp, assignments...)
	return b
}

// ToIfAlone appends keys emitted when the trigger is tapped.
func (b *Builder) ToIfAlone(keys ...SendKey) *Builder {
	b.m.ToIfAlone = append(b.m.ToIfAlone, keys...)
	return b
}

// Build returns the manipulator. It panics when no trigger was set, since
// every manipulator in the catalog is written by hand.
func (b *Builder) Build() Manipulator {
	if !b.hasFrom {
		panic("karabiner: manipulator built without a from key")
	}
	m := b.m
	m.Conditions = append([]Condition(nil), b.m.Conditions...)
	m.To = append([]Action(nil), b.m.To...)
	m.ToAfterKeyUp = append([]SetVariable(nil), b.m.ToAfterKeyUp...)
	m.ToIfAlone = append([]SendKey(nil), b.m.ToIfAlone...)
	return m
}

// LayerRemap maps from to a single key while vk is held. The trigger
// accepts any modifiers so they pass through to the emitted key.
func LayerRemap(vk VirtualKey, from KeyCode, to KeyCode, toMods ...ModifierKey) Manipulator {
	return NewManipulator().
		When(LayerActive(vk)).
		FromOptional(from, ModifierAny).
		To(Key(to, toMods...)).
		Build()
}

// VirtualKeyTrigger turns key into the switch for vk: holding it sets the
// variable, releasing clears it, and a tap emits alone.
func VirtualKeyTrigger(vk VirtualKey, key KeyCode, alone KeyCode) Manipulator {
	return NewManipulator().
		FromOptional(key, ModifierAny).
		To(Set(vk, On)).
		ToAfterKeyUp(Set(vk, Off)).
		ToIfAlone(Key(alone)).
		Build()
}
