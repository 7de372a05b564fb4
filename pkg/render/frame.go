package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/flagwave/pkg/flags"
	"github.com/dkoosis/flagwave/pkg/layout"
)

// Composer draws full-screen flag frames with a lipgloss renderer.
type Composer struct {
	r *lipgloss.Renderer
}

// NewComposer returns a composer using r, or lipgloss's default renderer
// when r is nil.
func NewComposer(r *lipgloss.Renderer) *Composer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Composer{r: r}
}

// Frame renders f as height rows of width cells. Every row but the last is
// plain stripes; the last row carries the flag-name and color-name overlays
// when enabled. label rewrites names before they are drawn and may be nil.
func (c *Composer) Frame(f flags.Flag, opts Options, width, height int, label func(string) string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	spans := layout.Stripes(len(f.Colors), width)
	if len(spans) == 0 {
		return ""
	}
	if label == nil {
		label = func(s string) string { return s }
	}

	fill := c.fillRow(f.Colors, spans)
	rows := make([]string, 0, height)
	for i := 0; i < height-1; i++ {
		rows = append(rows, fill)
	}
	if opts.ShowFlagName || opts.ShowColorNames {
		rows = append(rows, c.overlayRow(f, spans, opts, label))
	} else {
		rows = append(rows, fill)
	}
	return strings.Join(rows, "\n")
}

func (c *Composer) fillRow(colors []flags.Color, spans []layout.Span) string {
	var sb strings.Builder
	for i, s := range spans {
		if s.Width == 0 {
			continue
		}
		sb.WriteString(c.background(colors[i]).Render(strings.Repeat(" ", s.Width)))
	}
	return sb.String()
}

func (c *Composer) overlayRow(f flags.Flag, spans []layout.Span, opts Options, label func(string) string) string {
	row := newRow(spans[len(spans)-1].Right())

	if opts.ShowFlagName {
		first := spans[0]
		name := layout.Fit(label(f.Name), first.Width)
		p := layout.FlagNameAt(first, layout.TextWidth(name))
		row.write(p.X, name, f.Colors[0].Inverse())
	}
	if opts.ShowColorNames {
		for i, s := range spans {
			name := layout.Fit(label(f.Colors[i].Name), s.Width)
			p := layout.ColorNameAt(s, layout.TextWidth(name))
			row.write(p.X, name, f.Colors[i].Inverse())
		}
	}

	var sb strings.Builder
	for i, s := range spans {
		bg := c.background(f.Colors[i])
		for x := s.X; x < s.Right(); {
			start := row[x]
			var text strings.Builder
			for ; x < s.Right() && row[x].sameInk(start); x++ {
				if !row[x].cont {
					text.WriteString(row[x].ch)
				}
			}
			style := bg
			if start.text {
				style = style.Foreground(lipgloss.Color(start.fg.Hex()))
			}
			sb.WriteString(style.Render(text.String()))
		}
	}
	return sb.String()
}

func (c *Composer) background(col flags.Color) lipgloss.Style {
	return c.r.NewStyle().Background(lipgloss.Color(col.Hex()))
}

// cell is one terminal column of the overlay row.
type cell struct {
	ch   string
	fg   flags.Color
	text bool // carries overlay text drawn in fg
	cont bool // right half of a wide rune
}

var blank = cell{ch: " "}

func (a cell) sameInk(b cell) bool {
	if a.text != b.text {
		return false
	}
	return !a.text || (a.fg.R == b.fg.R && a.fg.G == b.fg.G && a.fg.B == b.fg.B)
}

type row []cell

func newRow(width int) row {
	r := make(row, width)
	for i := range r {
		r[i] = blank
	}
	return r
}

// write draws s starting at column x. Later writes replace earlier ones;
// a wide rune that would be split is blanked. Runes past the row end are
// dropped.
func (r row) write(x int, s string, fg flags.Color) {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x < 0 || x+w > len(r) {
			return
		}
		for i := 0; i < w; i++ {
			r.clear(x + i)
		}
		r[x] = cell{ch: string(ch), fg: fg, text: true}
		if w == 2 {
			r[x+1] = cell{fg: fg, text: true, cont: true}
		}
		x += w
	}
}

func (r row) clear(x int) {
	if r[x].cont && x > 0 {
		r[x-1] = blank
	}
	if x+1 < len(r) && r[x+1].cont {
		r[x+1] = blank
	}
	r[x] = blank
}
