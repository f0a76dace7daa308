package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

func TestStatusBar_StyledFlashKeepsWidth(t *testing.T) {
	t.Parallel()

	plain := statusBar(60, 3, 1, "")
	styled := statusBar(60, 3, 1, "\x1b[31msave failed\x1b[0m")

	if lipgloss.Width(plain) != 60 {
		t.Errorf("plain bar width = %d, want 60", lipgloss.Width(plain))
	}
	if lipgloss.Width(styled) != 60 {
		t.Errorf("styled-flash bar width = %d, want 60", lipgloss.Width(styled))
	}
	if !strings.Contains(styled, "save failed") {
		t.Errorf("flash missing from bar %q", styled)
	}
}

func TestFooter_NarrowWidthCutsWholeRunes(t *testing.T) {
	t.Parallel()

	for _, width := range []int{1, 2, 3, 7, 12, 25} {
		got := footer(width)
		if !utf8.ValidString(got) {
			t.Errorf("footer(%d) produced invalid UTF-8: %q", width, got)
		}
		if lipgloss.Width(got) > width {
			t.Errorf("footer(%d) width = %d", width, lipgloss.Width(got))
		}
	}
}
