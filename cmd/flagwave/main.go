// flagwave cycles full-screen flags made of vertical color stripes.
//
// Usage:
//
//	flagwave                     # show flags.yaml from the working directory
//	flagwave -config pride.yaml  # show another flags file
//	flagwave -check              # validate the flags file and exit
//	flagwave -list -format json  # print the flags instead of showing them
//
// Keys while running:
//
//	k  next flag        f  toggle flag name     ?  toggle help
//	t b g p  jump to flags 1-4 (configurable with jump_keys)
//	c  toggle color names                       q  quit
//
// When stdout is not a terminal the flags are listed instead (plain text
// unless -format says otherwise).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/sethvargo/go-envconfig"
	"golang.org/x/term"

	"github.com/dkoosis/flagwave/internal/config"
	"github.com/dkoosis/flagwave/internal/version"
	"github.com/dkoosis/flagwave/pkg/flags"
	"github.com/dkoosis/flagwave/pkg/render"
	"github.com/dkoosis/flagwave/pkg/viewer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, envconfig.OsLookuper()))
}

func run(args []string, stdout, stderr io.Writer, env envconfig.Lookuper) int {
	fs := flag.NewFlagSet("flagwave", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFlag := fs.String("config", config.DefaultConfigPath, "Path to the flags file")
	themeFlag := fs.String("theme", config.DefaultTheme, "Theme: default, orca, mono")
	formatFlag := fs.String("format", "auto", "Listing format: auto, terminal, plain, json")
	listFlag := fs.Bool("list", false, "List the flags instead of showing them")
	checkFlag := fs.Bool("check", false, "Validate the flags file and exit")
	versionFlag := fs.Bool("version", false, "Print version information and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "flagwave: unexpected arguments: %v\n", fs.Args())
		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	cli := config.CliFlags{ConfigPath: *configFlag, ThemeName: *themeFlag}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config":
			cli.ConfigPathSet = true
		case "theme":
			cli.ThemeNameSet = true
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	settings, err := config.Resolve(ctx, cli, env)
	if err != nil {
		fmt.Fprintf(stderr, "flagwave: %v\n", err)
		return 2
	}

	cfg, err := flags.Load(settings.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "flagwave: %v\n", err)
		return 2
	}

	if *checkFlag {
		fmt.Fprintf(stdout, "%s: ok (%s)\n", settings.ConfigPath, cfg.Summary())
		return 0
	}

	mode := resolveFormat(*formatFlag, stdout)
	validFormats := map[string]bool{"terminal": true, "plain": true, "json": true}
	if !validFormats[mode] {
		fmt.Fprintf(stderr, "flagwave: unknown format %q (expected auto, terminal, plain, json)\n", *formatFlag)
		return 2
	}

	if *listFlag || *formatFlag != "auto" || !isTTYWriter(stdout) {
		if err := viewer.RunNonTTY(cfg, selectRenderer(mode, settings, stdout), stdout); err != nil {
			fmt.Fprintf(stderr, "flagwave: %v\n", err)
			return 1
		}
		return 0
	}

	if err := viewer.Run(ctx, cfg, settings); err != nil {
		fmt.Fprintf(stderr, "flagwave: %v\n", err)
		return 1
	}
	return 0
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = plain
	if isTTYWriter(w) {
		return "terminal"
	}
	return "plain"
}

func selectRenderer(mode string, s *config.Settings, w io.Writer) render.Renderer {
	switch mode {
	case "json":
		return render.NewJSON()
	case "plain":
		return render.NewPlain()
	default:
		theme := render.ThemeByName(s.Theme)
		if s.NoColor() {
			theme = render.MonoTheme()
		}
		return render.NewTerminal(theme, termWidth(w), lipgloss.NewRenderer(w))
	}
}
