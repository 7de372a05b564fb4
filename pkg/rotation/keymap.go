package rotation

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// Keymap binds keys to actions. Jumps[i] selects flag i; the number of jump
// keys is independent of how many flags are configured.
type Keymap struct {
	Quit             key.Binding
	Advance          key.Binding
	ToggleFlagName   key.Binding
	ToggleColorNames key.Binding
	Help             key.Binding
	Jumps            []key.Binding
}

// NewKeymap builds the default command bindings plus one jump binding per
// entry of jumpKeys. names label the jump bindings in help output; jump keys
// beyond len(names) stay bound but are left out of help.
func NewKeymap(jumpKeys, names []string) Keymap {
	km := Keymap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Advance: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "next flag"),
		),
		ToggleFlagName: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flag name"),
		),
		ToggleColorNames: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "color names"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
	for i, k := range jumpKeys {
		desc := ""
		if i < len(names) {
			desc = names[i]
		}
		km.Jumps = append(km.Jumps, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, desc),
		))
	}
	return km
}

// Lookup returns the action bound to a key as reported by bubbletea's
// KeyMsg.String. Unbound keys yield None.
func (km Keymap) Lookup(k string) Action {
	switch {
	case bound(km.Quit, k):
		return Do(Quit)
	case bound(km.Advance, k):
		return Do(Advance)
	case bound(km.ToggleFlagName, k):
		return Do(ToggleFlagName)
	case bound(km.ToggleColorNames, k):
		return Do(ToggleColorNames)
	case bound(km.Help, k):
		return Do(ToggleHelp)
	}
	for i, b := range km.Jumps {
		if bound(b, k) {
			return Jump(i)
		}
	}
	return Do(None)
}

// ShortHelp implements help.KeyMap.
func (km Keymap) ShortHelp() []key.Binding {
	return []key.Binding{km.Advance, km.ToggleFlagName, km.ToggleColorNames, km.Help, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km Keymap) FullHelp() [][]key.Binding {
	var jumps []key.Binding
	for _, b := range km.Jumps {
		if b.Help().Desc != "" {
			jumps = append(jumps, b)
		}
	}
	return [][]key.Binding{km.ShortHelp(), jumps}
}

func bound(b key.Binding, k string) bool {
	return b.Enabled() && slices.Contains(b.Keys(), k)
}
