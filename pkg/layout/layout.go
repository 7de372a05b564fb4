// Package layout computes stripe geometry and overlay placement for a flag
// drawn across a terminal row of a given width.
package layout

import "github.com/mattn/go-runewidth"

// Span is a horizontal run of terminal cells.
type Span struct {
	X     int
	Width int
}

// Right returns the first column past the span.
func (s Span) Right() int {
	return s.X + s.Width
}

// Stripes partitions width cells into n stripes of equal ratio 1/n.
// Boundary i sits at i*width/n, so the spans are contiguous, cover exactly
// width cells and differ in width by at most one. n <= 0 yields nil.
func Stripes(n, width int) []Span {
	if n <= 0 {
		return nil
	}
	if width < 0 {
		width = 0
	}
	spans := make([]Span, n)
	prev := 0
	for i := 1; i <= n; i++ {
		edge := i * width / n
		spans[i-1] = Span{X: prev, Width: edge - prev}
		prev = edge
	}
	return spans
}

// Contrast returns the per-channel inverse of a background color.
func Contrast(r, g, b uint8) (uint8, uint8, uint8) {
	return 255 - r, 255 - g, 255 - b
}

// Placement is where overlay text lands within a row, and how many cells of
// it remain visible.
type Placement struct {
	X     int
	Width int
}

// FlagNameAt anchors text of the given display width to the left edge of the
// first stripe, clipped to that stripe.
func FlagNameAt(first Span, textWidth int) Placement {
	return Placement{X: first.X, Width: clamp(textWidth, 0, first.Width)}
}

// ColorNameAt right-aligns text of the given display width inside s. Text
// wider than the stripe starts at the stripe's left edge and is clipped.
func ColorNameAt(s Span, textWidth int) Placement {
	w := clamp(textWidth, 0, s.Width)
	return Placement{X: s.Right() - w, Width: w}
}

// Fit truncates text to at most width display cells.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "")
}

// TextWidth reports the display width of text in terminal cells.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
