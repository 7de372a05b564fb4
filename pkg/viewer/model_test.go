package viewer

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/flagwave/pkg/flags"
	"github.com/dkoosis/flagwave/pkg/render"
)

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func twoFlags() *flags.Config {
	return &flags.Config{
		RotationDelaySeconds: 5,
		ShowFlagName:         true,
		JumpKeys:             flags.DefaultJumpKeys,
		Flags: []flags.Flag{
			{Name: "A", Colors: []flags.Color{{Name: "red", R: 255}, {Name: "blue", B: 255}}},
			{Name: "B", Colors: []flags.Color{{Name: "white", R: 255, G: 255, B: 255}}},
		},
	}
}

// newTestModel returns a model with a fixed clock at t0.
func newTestModel(cfg *flags.Config) Model {
	m := New(cfg, 16*time.Millisecond, render.MonoTheme())
	m.now = func() time.Time { return t0 }
	m.state.Start = t0
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func press(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_TimerAdvance_AppliedOnFollowingFrame(t *testing.T) {
	m := newTestModel(twoFlags())

	m, cmd := update(t, m, frameMsg(t0.Add(5*time.Second)))
	assert.NotNil(t, cmd, "frame clock keeps ticking")
	assert.Equal(t, 0, m.state.Index, "delay not exceeded yet")

	m, _ = update(t, m, frameMsg(t0.Add(6*time.Second)))
	assert.Equal(t, 0, m.state.Index, "advance waits until the current frame is drawn")

	m, _ = update(t, m, frameMsg(t0.Add(6*time.Second+16*time.Millisecond)))
	assert.Equal(t, 1, m.state.Index)
	assert.Equal(t, t0.Add(6*time.Second), m.state.Start)

	m, _ = update(t, m, frameMsg(t0.Add(6*time.Second+32*time.Millisecond)))
	assert.Equal(t, 1, m.state.Index, "timer restarted")
}

func TestModel_ZeroDelay_RotatesOncePerSecond(t *testing.T) {
	cfg := twoFlags()
	cfg.RotationDelaySeconds = 0
	m := newTestModel(cfg)

	frame := 16 * time.Millisecond
	changes := 0
	var changedAt []time.Duration
	last := m.state.Index
	for elapsed := frame; elapsed <= 3*time.Second; elapsed += frame {
		m, _ = update(t, m, frameMsg(t0.Add(elapsed)))
		if m.state.Index != last {
			changes++
			changedAt = append(changedAt, elapsed)
			last = m.state.Index
		}
		if elapsed == 60*frame {
			assert.Zero(t, changes, "no rotation within the first second")
		}
	}

	require.Len(t, changedAt, 2, "one rotation per whole second after the first")
	// The 1008ms frame is the first a whole second after start; its advance
	// lands one frame later and restarts the timer at 1008ms.
	assert.Equal(t, 1024*time.Millisecond, changedAt[0])
	assert.Equal(t, 2032*time.Millisecond, changedAt[1])
}

func TestModel_SingleFlagWrapsToItself(t *testing.T) {
	cfg := twoFlags()
	cfg.Flags = cfg.Flags[:1]
	m := newTestModel(cfg)

	m, _ = update(t, m, frameMsg(t0.Add(6*time.Second)))
	m, _ = update(t, m, frameMsg(t0.Add(6*time.Second+16*time.Millisecond)))

	assert.Equal(t, 0, m.state.Index)
	assert.Equal(t, t0.Add(6*time.Second), m.state.Start)
}

func TestModel_AdvanceKey_MovesImmediatelyAndWraps(t *testing.T) {
	m := newTestModel(twoFlags())

	m, _ = update(t, m, press('k'))
	assert.Equal(t, 1, m.state.Index)

	m, _ = update(t, m, press('k'))
	assert.Equal(t, 0, m.state.Index)
}

func TestModel_JumpKey_CancelsPendingAdvance(t *testing.T) {
	cfg := twoFlags()
	cfg.Flags = append(cfg.Flags, flags.Flag{Name: "C", Colors: []flags.Color{{Name: "black"}}})
	m := newTestModel(cfg)
	m.now = func() time.Time { return t0.Add(6 * time.Second) }

	m, _ = update(t, m, frameMsg(t0.Add(6*time.Second)))
	m, _ = update(t, m, press('b'))
	require.Equal(t, 1, m.state.Index)

	m, _ = update(t, m, frameMsg(t0.Add(6*time.Second+16*time.Millisecond)))
	assert.Equal(t, 1, m.state.Index, "pending advance dropped by the jump")
}

func TestModel_JumpKey_IgnoredPastLastFlag(t *testing.T) {
	m := newTestModel(twoFlags())
	m, _ = update(t, m, press('k'))
	require.Equal(t, 1, m.state.Index)

	m, _ = update(t, m, press('g')) // bound to index 2, only 2 flags
	assert.Equal(t, 1, m.state.Index)
	assert.Equal(t, t0, m.state.Start)

	m, _ = update(t, m, press('p'))
	assert.Equal(t, 1, m.state.Index)

	m, _ = update(t, m, press('t'))
	assert.Equal(t, 0, m.state.Index)
}

func TestModel_ToggleKeys(t *testing.T) {
	m := newTestModel(twoFlags())
	orig := m.opts

	m, _ = update(t, m, press('f'))
	assert.False(t, m.opts.ShowFlagName)
	m, _ = update(t, m, press('c'))
	assert.True(t, m.opts.ShowColorNames)
	m, _ = update(t, m, press('?'))
	assert.True(t, m.opts.ShowHelp)

	m, _ = update(t, m, press('f'))
	m, _ = update(t, m, press('c'))
	m, _ = update(t, m, press('?'))
	assert.Equal(t, orig, m.opts)
	assert.Equal(t, 0, m.state.Index, "toggles leave rotation alone")
}

func TestModel_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{press('q'), {Type: tea.KeyCtrlC}} {
		m := newTestModel(twoFlags())
		_, cmd := update(t, m, msg)
		require.NotNil(t, cmd, msg.String())
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, msg.String())
	}
}

func TestModel_UnboundKeyDoesNothing(t *testing.T) {
	m := newTestModel(twoFlags())

	m, cmd := update(t, m, press('z'))

	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.state.Index)
	assert.Equal(t, render.OptionsFrom(m.cfg), m.opts)
}

func TestModel_View_FillsWindow(t *testing.T) {
	m := newTestModel(twoFlags())
	assert.Empty(t, m.View(), "nothing to draw before the first resize")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 8})
	lines := strings.Split(m.View(), "\n")

	require.Len(t, lines, 8)
	for _, l := range lines {
		assert.Equal(t, 30, lipgloss.Width(l))
	}
	assert.Contains(t, lines[7], "A", "flag name on the bottom row")
	assert.NotContains(t, lines[0], "A")
}

func TestModel_View_ShowsHelpAtBottom(t *testing.T) {
	m := newTestModel(twoFlags())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 10})
	m, _ = update(t, m, press('?'))

	view := m.View()
	lines := strings.Split(view, "\n")

	assert.Len(t, lines, 10)
	assert.Contains(t, view, "next flag")
	assert.Contains(t, view, "quit")
}

func TestModel_View_NoFlags(t *testing.T) {
	cfg := twoFlags()
	cfg.Flags = nil
	m := newTestModel(cfg)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 5})

	assert.Contains(t, m.View(), "no flags configured")

	m, _ = update(t, m, press('k'))
	m, _ = update(t, m, frameMsg(t0.Add(time.Hour)))
	assert.Equal(t, 0, m.state.Index)
}

func TestModel_Init_StartsFrameClock(t *testing.T) {
	m := newTestModel(twoFlags())

	assert.NotNil(t, m.Init())
}
