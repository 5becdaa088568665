// internal/tui/status.go
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	successfulResult = color.New(color.FgGreen).SprintFunc()
	failedResult     = color.New(color.FgRed).SprintFunc()
)

// Success writes a green status line to w.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successfulResult(fmt.Sprintf(format, args...)))
}

// Failure writes a red diagnostic line to w.
func Failure(w io.Writer, msg string) {
	fmt.Fprintln(w, failedResult(msg))
}

// DisableColor turns off ANSI colors for status lines.
func DisableColor() {
	color.NoColor = true
}

// renderBadge returns a Lipgloss-styled badge with the given label.
func renderBadge(label string) string {
	badgeStyle := lipgloss.NewStyle().Background(lipgloss.Color("229")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	return badgeStyle.Render(label)
}
