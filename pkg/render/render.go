// Package render draws flags as terminal stripes and lists flag
// configurations in terminal, plain and JSON form.
package render

import (
	"github.com/dkoosis/flagwave/pkg/flags"
	"github.com/dkoosis/flagwave/pkg/rotation"
)

// Renderer converts a loaded config to formatted output.
type Renderer interface {
	Render(cfg *flags.Config) string
}

// Options are the display toggles flipped live by the viewer.
type Options struct {
	ShowFlagName   bool
	ShowColorNames bool
	ShowHelp       bool
}

// OptionsFrom seeds display toggles from the loaded config.
func OptionsFrom(cfg *flags.Config) Options {
	return Options{
		ShowFlagName:   cfg.ShowFlagName,
		ShowColorNames: cfg.ShowColorNames,
	}
}

// Toggle flips the option bound to a toggle action and reports whether a
// was a toggle at all.
func (o *Options) Toggle(a rotation.Action) bool {
	switch a.Kind {
	case rotation.ToggleFlagName:
		o.ShowFlagName = !o.ShowFlagName
	case rotation.ToggleColorNames:
		o.ShowColorNames = !o.ShowColorNames
	case rotation.ToggleHelp:
		o.ShowHelp = !o.ShowHelp
	default:
		return false
	}
	return true
}
