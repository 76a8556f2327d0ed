package catalog

import k "github.com/hyprpal/kbgen/internal/karabiner"

const (
	mouseStep = 1536
	wheelStep = 64
)

func layerRules() []k.Rule {
	return []k.Rule{
		{Description: "vk1: navigation", Manipulators: navigationLayer()},
		{Description: "vk2: numbers and function keys", Manipulators: numberLayer()},
		{Description: "vk3: mouse", Manipulators: mouseLayer()},
		{Description: "vk4: launcher", Manipulators: launcherLayer()},
	}
}

var navigation = []remap{
	{from: k.KeyH, to: k.KeyLeftArrow},
	{from: k.KeyJ, to: k.KeyDownArrow},
	{from: k.KeyK, to: k.KeyUpArrow},
	{from: k.KeyL, to: k.KeyRightArrow},
	{from: k.KeyY, to: k.KeyHome},
	{from: k.KeyO, to: k.KeyEnd},
	{from: k.KeyU, to: k.KeyPageDown},
	{from: k.KeyI, to: k.KeyPageUp},
	{from: k.KeyB, to: k.KeyLeftArrow, mods: mods(k.ModifierOption)},
	{from: k.KeyW, to: k.KeyRightArrow, mods: mods(k.ModifierOption)},
	{from: k.KeyA, to: k.KeyLeftArrow, mods: mods(k.ModifierCommand)},
	{from: k.KeyE, to: k.KeyRightArrow, mods: mods(k.ModifierCommand)},
	{from: k.KeyN, to: k.KeyDeleteOrBackspace},
	{from: k.KeyM, to: k.KeyDeleteForward},
	{from: k.KeyD, to: k.KeyDeleteOrBackspace, mods: mods(k.ModifierOption)},
	{from: k.KeyF, to: k.KeyDeleteForward, mods: mods(k.ModifierOption)},
	{from: k.KeySpacebar, to: k.KeyReturnOrEnter},
	{from: k.KeyC, to: k.KeyC, mods: mods(k.ModifierCommand)},
	{from: k.KeyV, to: k.KeyV, mods: mods(k.ModifierCommand)},
	{from: k.KeyX, to: k.KeyX, mods: mods(k.ModifierCommand)},
	{from: k.KeyZ, to: k.KeyZ, mods: mods(k.ModifierCommand)},
}

func navigationLayer() []k.Manipulator {
	return layerTable(k.VK1, navigation)
}

// Top letter row to digits, home row and bottom row to function keys.
const (
	digitRow    = "qwertyuiop"
	functionRow = "asdfghjklzxc"
)

func numberLayer() []k.Manipulator {
	table := make([]remap, 0, len(digitRow)+len(functionRow)+4)
	for i, r := range digitRow {
		table = append(table, remap{from: k.KeyCode(string(r)), to: k.Numerals[i]})
	}
	for i, r := range functionRow {
		table = append(table, remap{from: k.KeyCode(string(r)), to: k.FunctionKeys[i]})
	}
	table = append(table,
		remap{from: k.KeyV, to: k.KeyHyphen},
		remap{from: k.KeyB, to: k.KeyEqualSign},
		remap{from: k.KeyN, to: k.KeyOpenBracket},
		remap{from: k.KeyM, to: k.KeyCloseBracket},
	)
	return layerTable(k.VK2, table)
}

func mouseLayer() []k.Manipulator {
	moves := []struct {
		from  k.KeyCode
		mouse k.SendMouse
	}{
		{k.KeyH, k.SendMouse{X: -mouseStep}},
		{k.KeyJ, k.SendMouse{Y: mouseStep}},
		{k.KeyK, k.SendMouse{Y: -mouseStep}},
		{k.KeyL, k.SendMouse{X: mouseStep}},
		{k.KeyU, k.SendMouse{VerticalWheel: -wheelStep}},
		{k.KeyN, k.SendMouse{VerticalWheel: wheelStep}},
	}
	out := make([]k.Manipulator, 0, len(moves)+3)
	for _, mv := range moves {
		out = append(out, k.NewManipulator().
			When(k.LayerActive(k.VK3)).
			FromOptional(mv.from, k.ModifierAny).
			To(mv.mouse).
			Build())
	}
	clicks := []struct {
		from   k.KeyCode
		button k.PointingButton
	}{
		{k.KeyF, k.Button1},
		{k.KeyG, k.Button2},
		{k.KeyB, k.Button3},
	}
	for _, c := range clicks {
		out = append(out, k.NewManipulator().
			When(k.LayerActive(k.VK3)).
			FromOptional(c.from, k.ModifierAny).
			To(k.Click{Button: c.button}).
			Build())
	}
	return out
}

var launches = []struct {
	from    k.KeyCode
	command string
}{
	{k.KeyT, "open -a 'iTerm'"},
	{k.KeyC, "open -a 'Google Chrome'"},
	{k.KeyS, "open -a 'Slack'"},
	{k.KeyV, "open -a 'Visual Studio Code'"},
	{k.KeyF, "open -a 'Finder'"},
	{k.KeyI, "open -a 'IntelliJ IDEA'"},
	{k.KeyL, "pmset displaysleepnow"},
	{k.KeyD, "open ~/Downloads"},
}

func launcherLayer() []k.Manipulator {
	out := make([]k.Manipulator, 0, len(launches))
	for _, l := range launches {
		out = append(out, k.NewManipulator().
			When(k.LayerActive(k.VK4)).
			From(l.from).
			To(k.Shell(l.command)).
			Build())
	}
	return out
}
