// Package rotation holds the flag rotation state machine and the mapping from
// keys to the actions that drive it.
package rotation

import "fmt"

// ActionKind enumerates what a key press or timer expiry asks for.
type ActionKind int

const (
	None ActionKind = iota
	Quit
	Advance
	JumpTo
	ToggleFlagName
	ToggleColorNames
	ToggleHelp
)

var kindNames = map[ActionKind]string{
	None:             "none",
	Quit:             "quit",
	Advance:          "advance",
	JumpTo:           "jump",
	ToggleFlagName:   "toggle-flag-name",
	ToggleColorNames: "toggle-color-names",
	ToggleHelp:       "toggle-help",
}

func (k ActionKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action is a semantic command. Index is only meaningful for JumpTo.
type Action struct {
	Kind  ActionKind
	Index int
}

// Jump returns an action selecting the flag at index i.
func Jump(i int) Action {
	return Action{Kind: JumpTo, Index: i}
}

// Do returns an action of the given kind.
func Do(k ActionKind) Action {
	return Action{Kind: k}
}

func (a Action) String() string {
	if a.Kind == JumpTo {
		return fmt.Sprintf("jump(%d)", a.Index)
	}
	return a.Kind.String()
}
