package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// out receives all task output. Tests swap it for a buffer.
var out io.Writer = os.Stdout

var (
	h1Style      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5bcefa"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#50fa7b"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f1fa8c"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
)

// PrintH1Header prints a top-level header with decoration.
func PrintH1Header(title string) {
	width := 80
	padding := max((width-lipgloss.Width(title))/2, 0)
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", width))
	fmt.Fprintln(out, strings.Repeat(" ", padding)+h1Style.Render(title))
	fmt.Fprintln(out, strings.Repeat("=", width))
	fmt.Fprintln(out)
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Fprintf(out, "\n=== %s ===\n\n", title)
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Fprintln(out, successStyle.Render("✅ "+msg))
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Fprintln(out, warningStyle.Render("⚠️  "+msg))
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Fprintln(out, errorStyle.Render("❌ "+msg))
}
