// Package viewer runs the full-screen flag rotation as a bubbletea program.
package viewer

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/flagwave/pkg/flags"
	"github.com/dkoosis/flagwave/pkg/render"
	"github.com/dkoosis/flagwave/pkg/rotation"
)

type frameMsg time.Time

// Model is the bubbletea model driving the rotation. All state changes go
// through Update, so nothing here needs locking.
type Model struct {
	cfg      *flags.Config
	state    *rotation.State
	opts     render.Options
	keys     rotation.Keymap
	help     help.Model
	composer *render.Composer
	label    func(string) string
	interval time.Duration
	now      func() time.Time
	logf     func(format string, args ...any)

	// pending is the timer's verdict for the frame on screen; it is applied
	// when the next frame arrives, after that frame was drawn.
	pending   rotation.Action
	pendingAt time.Time

	width  int
	height int
}

// New builds a model showing the first flag of cfg.
func New(cfg *flags.Config, interval time.Duration, theme render.Theme) Model {
	names := make([]string, len(cfg.Flags))
	for i, f := range cfg.Flags {
		names[i] = f.Name
	}

	h := help.New()
	h.ShowAll = true
	h.Styles.ShortKey = theme.Key
	h.Styles.ShortDesc = theme.Desc
	h.Styles.ShortSeparator = theme.Muted
	h.Styles.FullKey = theme.Key
	h.Styles.FullDesc = theme.Desc
	h.Styles.FullSeparator = theme.Muted

	now := time.Now
	return Model{
		cfg:      cfg,
		state:    rotation.New(len(cfg.Flags), cfg.RotationDelaySeconds, now()),
		opts:     render.OptionsFrom(cfg),
		keys:     rotation.NewKeymap(cfg.JumpKeys, names),
		help:     h,
		composer: render.NewComposer(nil),
		label:    cfg.Labeler(),
		interval: interval,
		now:      now,
		logf:     func(string, ...any) {},
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles frame ticks, key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		now := time.Time(msg)
		m.applyPending()
		m.pending = m.state.Tick(now)
		m.pendingAt = now
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logf("resize %dx%d", msg.Width, msg.Height)
	}
	return m, nil
}

func (m *Model) applyPending() {
	if m.state.Apply(m.pending, m.pendingAt) {
		m.logf("rotate to %d (%s)", m.state.Index, m.currentName())
	}
	m.pending = rotation.Do(rotation.None)
}

func (m Model) handleKey(k string) (tea.Model, tea.Cmd) {
	a := m.keys.Lookup(k)
	switch a.Kind {
	case rotation.Quit:
		m.logf("quit")
		return m, tea.Quit
	case rotation.Advance, rotation.JumpTo:
		if m.state.Apply(a, m.now()) {
			m.pending = rotation.Do(rotation.None)
			m.logf("%s -> %d (%s)", a, m.state.Index, m.currentName())
		} else {
			m.logf("%s ignored: %d flags configured", a, m.state.Count)
		}
	case rotation.ToggleFlagName, rotation.ToggleColorNames, rotation.ToggleHelp:
		m.opts.Toggle(a)
		m.logf("%s: %+v", a, m.opts)
	}
	return m, nil
}

func (m Model) currentName() string {
	if m.state.Count == 0 {
		return ""
	}
	return m.cfg.Flags[m.state.Index].Name
}

// View draws the current flag over the whole window, with the key help
// taking the bottom rows while it is shown.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.state.Count == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "no flags configured (q to quit)")
	}

	flagHeight := m.height
	var helpView string
	if m.opts.ShowHelp {
		helpView = m.help.View(m.keys)
		flagHeight -= lipgloss.Height(helpView)
	}

	var sb strings.Builder
	if flagHeight > 0 {
		sb.WriteString(m.composer.Frame(m.cfg.Flags[m.state.Index], m.opts, m.width, flagHeight, m.label))
	}
	if helpView != "" {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(helpView)
	}
	return sb.String()
}
