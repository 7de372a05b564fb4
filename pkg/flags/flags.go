// Package flags loads the flag definitions flagwave cycles through.
//
// The definitions live in a YAML file (flags.yaml in the working directory by
// default). A flag is a named, ordered list of colors; the order of the colors
// is the left-to-right stripe order on screen.
package flags

import (
	"fmt"

	"github.com/dkoosis/flagwave/pkg/layout"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "flags.yaml"

// DefaultJumpKeys are bound to flag indices 0..3 when the config names none.
var DefaultJumpKeys = []string{"t", "b", "g", "p"}

// ReservedKeys are command keys that jump keys may not shadow.
var ReservedKeys = []string{"q", "k", "f", "c", "?"}

// Label casing modes.
const (
	CaseAsIs  = "as-is"
	CaseTitle = "title"
	CaseUpper = "upper"
)

// Color is a named RGB stripe color.
type Color struct {
	Name string
	R    uint8
	G    uint8
	B    uint8
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Inverse returns the per-channel 255-minus-value color used for overlay text.
func (c Color) Inverse() Color {
	r, g, b := layout.Contrast(c.R, c.G, c.B)
	return Color{Name: c.Name, R: r, G: g, B: b}
}

// Flag is a named sequence of stripe colors.
type Flag struct {
	Name   string
	Colors []Color
}

// Config is the loaded flags file. It is never mutated after Load returns.
type Config struct {
	RotationDelaySeconds int
	ShowFlagName         bool
	ShowColorNames       bool
	JumpKeys             []string
	LabelCase            string
	Flags                []Flag
}

// Summary returns a one-line description used by -check and debug logging.
func (c *Config) Summary() string {
	colors := 0
	for _, f := range c.Flags {
		colors += len(f.Colors)
	}
	return fmt.Sprintf("%d flags, %d colors, delay %ds", len(c.Flags), colors, c.RotationDelaySeconds)
}
