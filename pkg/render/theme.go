package render

import "github.com/charmbracelet/lipgloss"

// Theme styles the chrome around flags: listing headers and the help line.
// Stripe colors always come from the flags themselves.
type Theme struct {
	Name  string
	Title lipgloss.Style
	Key   lipgloss.Style
	Desc  lipgloss.Style
	Muted lipgloss.Style
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:  "default",
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // blue
		Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),           // orange
		Desc:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),           // light gray
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("242")),           // gray
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:  "orca",
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")), // pale blue
		Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("179")),           // muted gold
		Desc:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:  "mono",
		Title: lipgloss.NewStyle().Bold(true),
		Key:   lipgloss.NewStyle().Bold(true),
		Desc:  lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle(),
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
