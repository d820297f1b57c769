// Package chart renders the trend and proportional charts as styled
// terminal cells. Each chart owns its geometry (set at creation, replaced
// wholesale on resize) while the data-dependent layer is rebuilt from
// scratch on every render, so repeated renders of the same data produce
// identical output.
package chart

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/FransDroid/sentiment-analysis-project/internal/api"
)

// Fixed color mapping for the three series/categories.
var (
	colorPositive = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorNeutral  = lipgloss.AdaptiveColor{Light: "#C29D0B", Dark: "#E5C07B"}
	colorNegative = lipgloss.AdaptiveColor{Light: "#D11500", Dark: "#E06C75"}

	positiveStyle = lipgloss.NewStyle().Foreground(colorPositive)
	neutralStyle  = lipgloss.NewStyle().Foreground(colorNeutral)
	negativeStyle = lipgloss.NewStyle().Foreground(colorNegative)

	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"})
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}).Italic(true)
)

// SeriesStyle returns the fixed style for one category.
func SeriesStyle(s api.Sentiment) lipgloss.Style {
	switch s {
	case api.Positive:
		return positiveStyle
	case api.Negative:
		return negativeStyle
	default:
		return neutralStyle
	}
}

func renderEmpty(text string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, emptyStyle.Render(text))
}
