package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(lastUpdated time.Time, refreshing bool, pending int, width int) string {
	left := " updated " + relativeTime(lastUpdated)
	if lastUpdated.IsZero() {
		left = " waiting for first refresh"
	}
	if refreshing {
		left += fmt.Sprintf(" (refreshing, %d pending)", pending)
	}

	right := " r refresh  x dismiss  q quit "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
