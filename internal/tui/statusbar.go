package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// statusBar renders the one-line header: app name, tracker count, and
// how many trackers have met their goal. Widths are measured with
// lipgloss.Width since the flash may carry styled text.
func statusBar(width, total, done int, flash string) string {
	left := " orbit"
	right := fmt.Sprintf("%d/%d met ", done, total)
	if flash != "" {
		right = flash + "  " + right
	}
	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return styleStatusBar.Render(left + strings.Repeat(" ", pad) + right)
}

// footer renders the key hints line.
func footer(width int) string {
	hints := " ↑/↓ move · enter details · l log · g goal · r refresh · q quit"
	if width > 0 {
		hints = truncate(hints, width)
	}
	return styleFooter.Render(hints)
}
