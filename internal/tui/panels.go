package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/FransDroid/sentiment-analysis-project/internal/api"
	"github.com/FransDroid/sentiment-analysis-project/internal/chart"
)

func relativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// renderPane draws a bordered pane with a title line. When tip is
// non-empty it is shown right-aligned in the title line, which keeps the
// tooltip inside the hovered pane without shifting the layout.
func renderPane(title, content, tip string, w, h int) string {
	innerW := w - 2
	titleLine := paneTitleStyle.Render(title)
	if tip != "" {
		tipR := tooltipStyle.Render(tip)
		gap := innerW - lipgloss.Width(titleLine) - lipgloss.Width(tipR)
		if gap > 0 {
			titleLine += strings.Repeat(" ", gap) + tipR
		}
	}
	body := lipgloss.JoinVertical(lipgloss.Left, titleLine, content)
	return paneStyle.Width(innerW).Height(h - 2).Render(body)
}

// renderSummaryCards draws the four stat cards: one per category plus the
// total post count.
func renderSummaryCards(summary *api.Summary, width int) string {
	cardW := width/4 - 2
	if cardW < 10 {
		cardW = 10
	}

	card := func(value, label string, style lipgloss.Style) string {
		content := style.Render(value) + "\n" + cardLabelStyle.Render(label)
		return paneStyle.Width(cardW).Render(content)
	}

	if summary == nil {
		var cards []string
		for _, s := range api.Sentiments {
			cards = append(cards, card("–", string(s), cardValueStyle))
		}
		cards = append(cards, card("–", "total posts", cardValueStyle))
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	var cards []string
	for _, s := range api.Sentiments {
		value := fmt.Sprintf("%.1f%%", summary.Share(s))
		cards = append(cards, card(value, string(s), cardValueStyle.Inherit(chart.SeriesStyle(s))))
	}
	cards = append(cards, card(fmt.Sprintf("%d", summary.Total), "total posts", cardValueStyle))
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderOverview draws one mini pane per platform, keyed by platform name
// in stable order.
func renderOverview(overview *api.Overview, width, height int) string {
	if overview == nil || len(overview.Platforms) == 0 {
		return paneStyle.Width(width - 2).Height(height - 2).Render(
			emptyPaneStyle.Render("no platform stats yet"))
	}

	names := make([]string, 0, len(overview.Platforms))
	for name := range overview.Platforms {
		names = append(names, name)
	}
	sort.Strings(names)

	paneW := width/len(names) - 2
	if paneW < 14 {
		paneW = 14
	}

	var panes []string
	for _, name := range names {
		s := overview.Platforms[name]
		var line string
		if s.Total == 0 {
			line = emptyPaneStyle.Render("no posts")
		} else {
			line = chart.SeriesStyle(api.Positive).Render(fmt.Sprintf("%.0f%%", s.Positive)) + dimStyle.Render(" / ") +
				chart.SeriesStyle(api.Neutral).Render(fmt.Sprintf("%.0f%%", s.Neutral)) + dimStyle.Render(" / ") +
				chart.SeriesStyle(api.Negative).Render(fmt.Sprintf("%.0f%%", s.Negative)) +
				dimStyle.Render(fmt.Sprintf(" · %d", s.Total))
		}
		content := paneTitleStyle.Render(name) + "\n" + line
		panes = append(panes, paneStyle.Width(paneW).Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

// renderPosts draws the three top-post columns keyed by sentiment.
func renderPosts(posts map[api.Sentiment][]api.Post, width, height int) string {
	colW := width/3 - 2
	if colW < 16 {
		colW = 16
	}
	innerH := height - 3 // border + title

	var cols []string
	for _, s := range api.Sentiments {
		title := chart.SeriesStyle(s).Bold(true).Render("top " + string(s))
		var lines []string
		if len(posts[s]) == 0 {
			lines = append(lines, emptyPaneStyle.Render("no posts"))
		}
		for _, p := range posts[s] {
			if len(lines)+2 > innerH {
				break
			}
			lines = append(lines,
				truncateStr(p.Text, colW-2),
				dimStyle.Render(fmt.Sprintf("%s · %.2f · %s", p.Platform, p.Sentiment.Confidence, relativeTime(p.CreatedAt.Time))),
			)
		}
		content := lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, lines...)...)
		cols = append(cols, paneStyle.Width(colW).Height(height-2).Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
