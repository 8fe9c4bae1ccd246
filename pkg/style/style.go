// Package style holds the terminal styling used by the command line
// surface. Styling is applied only when the destination is a terminal;
// piped and redirected output stays plain.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545",
		Dark:  "#FF6B7D",
	}

	PathColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#A0A8B0",
	}
)

var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)

// ShouldStyle reports whether styled output is appropriate for the
// given destination. NO_COLOR always wins.
func ShouldStyle(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(output.Fd()) || isatty.IsCygwinTerminal(output.Fd())
}

// RenderError formats an error message for the given destination
func RenderError(output *os.File, msg string) string {
	if !ShouldStyle(output) {
		return msg
	}
	return ErrorStyle.Render(msg)
}
