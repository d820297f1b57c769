package tui

import (
	"fmt"
	"math"

	"github.com/FransDroid/sentiment-analysis-project/internal/api"
	"github.com/FransDroid/sentiment-analysis-project/internal/chart"
)

// tooltip is the single floating label shown while the pointer rests on a
// chart element. At most one exists; showing a new one retires the old.
type tooltip struct {
	pane string // "trend" or "pie"
	text string
}

func (m *Model) setTooltip(pane, text string) {
	m.tooltip = &tooltip{pane: pane, text: text}
}

func (m *Model) clearTooltip() {
	m.tooltip = nil
}

func trendTooltipText(hit chart.PointHit) string {
	return fmt.Sprintf("● %s · %s · %d posts",
		hit.Series, hit.Point.Time.Format("Jan 2 15:04"), hit.Point.Count(hit.Series))
}

func pieTooltipText(cat api.Sentiment, s api.Summary) string {
	share := s.Share(cat)
	count := int(math.Round(share / 100 * float64(s.Total)))
	return fmt.Sprintf("● %s · %.1f%% · ~%d posts", cat, share, count)
}
