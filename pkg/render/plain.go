package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/flagwave/pkg/flags"
)

// Plain renders flags as terse plain text for pipes and logs.
// Zero ANSI codes, config order preserved.
type Plain struct{}

// NewPlain creates a plain-text renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats all flags as plain text.
func (p *Plain) Render(cfg *flags.Config) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "FLAGS: %d delay=%ds flag_name=%s color_names=%s\n",
		len(cfg.Flags), cfg.RotationDelaySeconds, onOff(cfg.ShowFlagName), onOff(cfg.ShowColorNames))
	for i, f := range cfg.Flags {
		sb.WriteString("\n## " + f.Name)
		if i < len(cfg.JumpKeys) {
			sb.WriteString(" [" + cfg.JumpKeys[i] + "]")
		}
		sb.WriteString("\n")
		for _, c := range f.Colors {
			fmt.Fprintf(&sb, "%s %s %d,%d,%d\n", c.Hex(), c.Name, c.R, c.G, c.B)
		}
	}
	return sb.String()
}
