package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/FransDroid/sentiment-analysis-project/internal/api"
)

func (m *Model) View() string {
	if m.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  sentidash")
	}

	l := computeLayout(m.width, m.height, len(m.notifs))

	// Header
	headerLeft := headerStyle.Render("sentidash")
	headerRight := headerClockStyle.Render("updated " + relativeTime(m.lastUpdated))
	headerGap := m.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight) - 1
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	cards := renderSummaryCards(m.summary, m.width)

	var trendTip, pieTip string
	if m.tooltip != nil {
		if m.tooltip.pane == "trend" {
			trendTip = m.tooltip.text
		} else {
			pieTip = m.tooltip.text
		}
	}

	var trendContent, pieContent string
	if m.trendChart != nil {
		trendContent = m.trendChart.Render(m.points)
	}
	if m.pieChart != nil {
		var s api.Summary
		if m.summary != nil {
			s = *m.summary
		}
		pieContent = m.pieChart.Render(s)
	}
	charts := lipgloss.JoinHorizontal(lipgloss.Top,
		renderPane("sentiment trend", trendContent, trendTip, l.trendCh.w, l.trendCh.h),
		renderPane("sentiment split", pieContent, pieTip, l.pieCh.w, l.pieCh.h),
	)

	overview := renderOverview(m.overview, m.width, l.overview.h)
	posts := renderPosts(m.posts, m.width, l.posts.h)

	sections := []string{header, cards, charts, overview, posts}
	if len(m.notifs) > 0 {
		sections = append(sections, renderNotifications(m.notifs, m.width))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	status := renderStatusBar(m.lastUpdated, m.refreshing, m.pending, m.width)
	if m.refreshing {
		status = m.spinner.View() + " " + status
	}

	return m.withStatusBar(content, status)
}

// withStatusBar pads or trims the content so the status bar sits on the
// last terminal row.
func (m *Model) withStatusBar(content, bar string) string {
	lines := strings.Split(content, "\n")
	for len(lines) < m.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= m.height {
		lines = lines[:m.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}
