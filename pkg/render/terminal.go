package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/flagwave/pkg/flags"
	"github.com/dkoosis/flagwave/pkg/layout"
)

// maxPreviewWidth caps the stripe preview drawn under each flag heading.
const maxPreviewWidth = 48

// Terminal lists every flag with a one-row stripe preview, styled via lipgloss.
type Terminal struct {
	theme    Theme
	width    int
	composer *Composer
}

// NewTerminal creates a terminal renderer with the given theme. r selects
// the lipgloss renderer (and so the color profile); nil uses the default.
func NewTerminal(theme Theme, width int, r *lipgloss.Renderer) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width, composer: NewComposer(r)}
}

// Render formats all flags for terminal display.
func (t *Terminal) Render(cfg *flags.Config) string {
	label := cfg.Labeler()
	var sb strings.Builder
	sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("%s, flag name %s, color names %s",
		cfg.Summary(), onOff(cfg.ShowFlagName), onOff(cfg.ShowColorNames))))
	sb.WriteString("\n")

	preview := t.width - 2
	if preview > maxPreviewWidth {
		preview = maxPreviewWidth
	}
	for i, f := range cfg.Flags {
		sb.WriteString("\n")
		sb.WriteString(t.theme.Title.Render(label(f.Name)))
		if i < len(cfg.JumpKeys) {
			sb.WriteString(" " + t.theme.Key.Render("["+cfg.JumpKeys[i]+"]"))
		}
		sb.WriteString("\n")
		if preview > 0 {
			sb.WriteString("  ")
			sb.WriteString(t.composer.Frame(f, Options{}, preview, 1, nil))
			sb.WriteString("\n")
		}
		nameWidth := 0
		for _, c := range f.Colors {
			if w := layout.TextWidth(label(c.Name)); w > nameWidth {
				nameWidth = w
			}
		}
		for _, c := range f.Colors {
			name := label(c.Name)
			pad := strings.Repeat(" ", nameWidth-layout.TextWidth(name))
			sb.WriteString("  " + t.theme.Desc.Render(name) + pad + "  " + t.theme.Muted.Render(c.Hex()) + "\n")
		}
	}
	return sb.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
