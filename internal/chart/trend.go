package chart

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/FransDroid/sentiment-analysis-project/internal/api"
	"github.com/FransDroid/sentiment-analysis-project/internal/trend"
)

// gutter is the fixed width of the y-axis label column.
const gutter = 5

// drawOrder puts positive on top where series overlap.
var drawOrder = []api.Sentiment{api.Negative, api.Neutral, api.Positive}

// PointHit identifies the series point under a cell, for tooltips.
type PointHit struct {
	Series api.Sentiment
	Point  trend.Point
}

type marker struct {
	col, row int
	hit      PointHit
}

// TrendChart is the persistent state of the multi-series trend chart.
// Geometry changes only through NewTrendChart and Resize; Render rebuilds
// the data layer (cells, markers, legend) in full each call.
type TrendChart struct {
	width  int
	height int

	// marker positions from the latest render, for hit testing
	markers []marker
}

func NewTrendChart(width, height int) *TrendChart {
	c := &TrendChart{}
	c.Resize(width, height)
	return c
}

// Resize replaces the chart's geometry wholesale and invalidates any
// rendered state.
func (c *TrendChart) Resize(width, height int) {
	if width < gutter+10 {
		width = gutter + 10
	}
	if height < 5 {
		height = 5
	}
	c.width = width
	c.height = height
	c.markers = nil
}

func (c *TrendChart) Width() int  { return c.width }
func (c *TrendChart) Height() int { return c.height }

// Render draws the three series over the current geometry. An empty point
// sequence produces the designated empty state with no series or legend
// elements.
func (c *TrendChart) Render(points []trend.Point) string {
	if len(points) == 0 {
		c.markers = nil
		return renderEmpty("no trend data yet", c.width, c.height)
	}

	plotW := c.width - gutter
	plotH := c.height - 2 // x-axis labels + legend

	maxV := trend.MaxCount(points)
	minT := points[0].Time
	maxT := points[len(points)-1].Time
	span := maxT.Sub(minT)

	xScale := func(i int) int {
		if span <= 0 {
			// single-point domain collapses to the middle column
			return plotW / 2
		}
		frac := float64(points[i].Time.Sub(minT)) / float64(span)
		return int(math.Round(frac * float64(plotW-1)))
	}
	yScale := func(v int) int {
		if maxV == 0 {
			return plotH - 1
		}
		frac := float64(v) / float64(maxV)
		return plotH - 1 - int(math.Round(frac*float64(plotH-1)))
	}

	type cell struct {
		ch     rune
		series api.Sentiment
	}
	grid := make([][]cell, plotH)
	for i := range grid {
		grid[i] = make([]cell, plotW)
	}

	c.markers = c.markers[:0]
	for _, s := range drawOrder {
		prevCol, prevRow := -1, -1
		for i, p := range points {
			col, row := xScale(i), yScale(p.Count(s))
			if col < 0 || col >= plotW || row < 0 || row >= plotH {
				continue
			}
			if prevCol >= 0 && col > prevCol {
				for x := prevCol + 1; x < col; x++ {
					frac := float64(x-prevCol) / float64(col-prevCol)
					y := prevRow + int(math.Round(frac*float64(row-prevRow)))
					grid[y][x] = cell{ch: '·', series: s}
				}
			}
			grid[row][col] = cell{ch: '●', series: s}
			c.markers = append(c.markers, marker{col: col, row: row, hit: PointHit{Series: s, Point: p}})
			prevCol, prevRow = col, row
		}
	}

	var b strings.Builder
	for y := 0; y < plotH; y++ {
		switch y {
		case 0:
			b.WriteString(axisStyle.Render(fmt.Sprintf("%4d ", maxV)))
		case plotH - 1:
			b.WriteString(axisStyle.Render(fmt.Sprintf("%4d ", 0)))
		default:
			b.WriteString(strings.Repeat(" ", gutter))
		}
		for x := 0; x < plotW; x++ {
			cl := grid[y][x]
			if cl.ch == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(SeriesStyle(cl.series).Render(string(cl.ch)))
		}
		b.WriteByte('\n')
	}

	b.WriteString(c.renderAxis(minT, maxT, plotW, span <= 0))
	b.WriteByte('\n')
	b.WriteString(c.renderLegend())

	return b.String()
}

func (c *TrendChart) renderAxis(minT, maxT time.Time, plotW int, single bool) string {
	const layout = "Jan 2 15:04"
	left := minT.Format(layout)
	if single {
		pad := plotW/2 - len(left)/2
		if pad < 0 {
			pad = 0
		}
		return strings.Repeat(" ", gutter+pad) + axisStyle.Render(left)
	}
	right := maxT.Format(layout)
	gap := plotW - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return strings.Repeat(" ", gutter) + axisStyle.Render(left) + strings.Repeat(" ", gap) + axisStyle.Render(right)
}

func (c *TrendChart) renderLegend() string {
	parts := make([]string, 0, len(api.Sentiments))
	for _, s := range api.Sentiments {
		parts = append(parts, SeriesStyle(s).Render("● "+string(s)))
	}
	return strings.Repeat(" ", gutter) + strings.Join(parts, "  ")
}

// HitTest maps a pane-local cell coordinate to the nearest point marker
// from the latest render, within one cell of tolerance.
func (c *TrendChart) HitTest(x, y int) (PointHit, bool) {
	col := x - gutter
	best := -1
	bestDist := math.MaxInt
	for i, m := range c.markers {
		dx, dy := abs(m.col-col), abs(m.row-y)
		if dx > 1 || dy > 1 {
			continue
		}
		if d := dx + dy; d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return PointHit{}, false
	}
	return c.markers[best].hit, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
