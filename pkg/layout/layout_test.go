package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripes_CoverWidthExactly_When_PartitioningAnyWidth(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 24; n++ {
		for width := 0; width <= 240; width++ {
			spans := Stripes(n, width)
			require.Len(t, spans, n)

			total := 0
			next := 0
			lo, hi := width/n, (width+n-1)/n
			for i, s := range spans {
				require.Equal(t, next, s.X, "n=%d width=%d stripe %d not contiguous", n, width, i)
				require.GreaterOrEqual(t, s.Width, lo, "n=%d width=%d stripe %d too narrow", n, width, i)
				require.LessOrEqual(t, s.Width, hi, "n=%d width=%d stripe %d too wide", n, width, i)
				total += s.Width
				next = s.Right()
			}
			require.Equal(t, width, total, "n=%d width=%d", n, width)
		}
	}
}

func TestStripes_HandlesDegenerateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		n     int
		width int
		want  []Span
	}{
		{name: "zero stripes yields nothing", n: 0, width: 80, want: nil},
		{name: "negative stripes yields nothing", n: -2, width: 80, want: nil},
		{name: "negative width yields empty stripes", n: 2, width: -5, want: []Span{{0, 0}, {0, 0}}},
		{name: "more stripes than cells", n: 4, width: 2, want: []Span{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{name: "even split", n: 3, width: 9, want: []Span{{0, 3}, {3, 3}, {6, 3}}},
		{name: "remainder spread", n: 3, width: 10, want: []Span{{0, 3}, {3, 3}, {6, 4}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Stripes(tc.n, tc.width))
		})
	}
}

func TestContrast_IsInvolution_When_AppliedTwice(t *testing.T) {
	t.Parallel()

	for r := 0; r <= 255; r++ {
		for g := 0; g <= 255; g++ {
			for b := 0; b <= 255; b++ {
				ir, ig, ib := Contrast(uint8(r), uint8(g), uint8(b))
				rr, rg, rb := Contrast(ir, ig, ib)
				if int(rr) != r || int(rg) != g || int(rb) != b {
					t.Fatalf("Contrast(Contrast(%d,%d,%d)) = %d,%d,%d", r, g, b, rr, rg, rb)
				}
			}
		}
	}
}

func TestContrast_InvertsEachChannel(t *testing.T) {
	t.Parallel()

	r, g, b := Contrast(255, 0, 91)
	assert.Equal(t, [3]uint8{0, 255, 164}, [3]uint8{r, g, b})
}

func TestColorNameAt_ClampsToStripe_When_TextIsWiderThanStripe(t *testing.T) {
	t.Parallel()

	stripe := Span{X: 6, Width: 3}
	text := Fit("Magenta", stripe.Width)

	p := ColorNameAt(stripe, TextWidth(text))

	assert.Equal(t, "Mag", text)
	assert.Equal(t, Placement{X: 6, Width: 3}, p)
	assert.Equal(t, Placement{X: 6, Width: 3}, ColorNameAt(stripe, 7), "unclipped width must not underflow")
}

func TestColorNameAt_RightAligns_When_TextFits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Placement{X: 7, Width: 3}, ColorNameAt(Span{X: 5, Width: 5}, 3))
	assert.Equal(t, Placement{X: 10, Width: 0}, ColorNameAt(Span{X: 5, Width: 5}, 0))
	assert.Equal(t, Placement{X: 5, Width: 0}, ColorNameAt(Span{X: 5, Width: 0}, 4))
}

func TestFlagNameAt_AnchorsLeft(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Placement{X: 0, Width: 4}, FlagNameAt(Span{X: 0, Width: 10}, 4))
	assert.Equal(t, Placement{X: 0, Width: 2}, FlagNameAt(Span{X: 0, Width: 2}, 11))
}

func TestFit_RespectsDisplayWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "fits unchanged", text: "Pink", width: 4, want: "Pink"},
		{name: "ascii truncated", text: "Lavender", width: 3, want: "Lav"},
		{name: "zero width", text: "Pink", width: 0, want: ""},
		{name: "wide rune not split", text: "日本", width: 3, want: "日"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Fit(tc.text, tc.width)
			assert.Equal(t, tc.want, got)
			assert.LessOrEqual(t, TextWidth(got), tc.width)
		})
	}
}
