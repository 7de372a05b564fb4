package viewer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoosis/flagwave/internal/config"
	"github.com/dkoosis/flagwave/pkg/flags"
	"github.com/dkoosis/flagwave/pkg/render"
)

// Run shows cfg full screen until the user quits or ctx is cancelled.
// bubbletea enters raw mode and the alternate screen here and restores the
// terminal on every way out of Run, panics included.
func Run(ctx context.Context, cfg *flags.Config, s *config.Settings, opts ...tea.ProgramOption) error {
	m := New(cfg, s.FrameInterval, render.ThemeByName(s.Theme))

	if s.Debug {
		prevOut, prevPrefix := log.Writer(), log.Prefix()
		f, err := tea.LogToFile(s.LogFile, "flagwave")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
		// The standard logger must not outlive the file it writes to.
		defer func() {
			log.SetOutput(prevOut)
			log.SetPrefix(prevPrefix)
		}()
		m.logf = log.Printf
		log.Printf("loaded %s from %s (%s)", cfg.Summary(), s.ConfigPath, s.ConfigPathSource)
	}

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(m, opts...)
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

// RunNonTTY writes a static listing of cfg for non-interactive output.
func RunNonTTY(cfg *flags.Config, r render.Renderer, out io.Writer) error {
	if _, err := io.WriteString(out, r.Render(cfg)); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}
