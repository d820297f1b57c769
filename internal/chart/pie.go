package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/FransDroid/sentiment-analysis-project/internal/api"
)

// LabelThreshold is the minimum percentage share a category needs before
// its label is drawn. Thinner slices stay unlabeled.
const LabelThreshold = 5.0

// PieChart is the persistent state of the proportional chart. The full
// circle represents 100%; each category's angular span is proportional to
// its share. Every render clears and rebuilds all arcs and labels.
type PieChart struct {
	width  int
	height int

	// category per plot cell from the latest render, for hit testing
	cells [][]api.Sentiment
}

func NewPieChart(width, height int) *PieChart {
	c := &PieChart{}
	c.Resize(width, height)
	return c
}

// Resize replaces the chart's geometry wholesale and invalidates any
// rendered state.
func (c *PieChart) Resize(width, height int) {
	if width < 12 {
		width = 12
	}
	if height < 8 {
		height = 8
	}
	c.width = width
	c.height = height
	c.cells = nil
}

func (c *PieChart) Width() int  { return c.width }
func (c *PieChart) Height() int { return c.height }

// plotHeight reserves rows below the circle for up to three labels and the
// total line, keeping the rendered height fixed regardless of how many
// labels clear the threshold.
func (c *PieChart) plotHeight() int {
	return c.height - 4
}

// Render draws the arcs and labels for the given summary. A summary with
// zero total produces the designated empty state.
func (c *PieChart) Render(s api.Summary) string {
	sum := s.Positive + s.Neutral + s.Negative
	if s.Total <= 0 || sum <= 0 {
		c.cells = nil
		return renderEmpty("no posts yet", c.width, c.height)
	}

	plotH := c.plotHeight()
	plotW := c.width

	// Terminal cells are roughly twice as tall as wide, so the circle is
	// an ellipse in cell space.
	cy := float64(plotH-1) / 2
	cx := float64(plotW-1) / 2
	ry := cy
	rx := math.Min(cx, 2*ry)

	// cumulative fractions, positive then neutral then negative,
	// clockwise from 12 o'clock
	posEnd := s.Positive / sum
	neuEnd := posEnd + s.Neutral/sum

	c.cells = make([][]api.Sentiment, plotH)
	var b strings.Builder
	for y := 0; y < plotH; y++ {
		c.cells[y] = make([]api.Sentiment, plotW)
		for x := 0; x < plotW; x++ {
			nx := (float64(x) - cx) / rx
			ny := (float64(y) - cy) / ry
			if nx*nx+ny*ny > 1 {
				b.WriteByte(' ')
				continue
			}
			frac := math.Atan2(nx, -ny) / (2 * math.Pi)
			if frac < 0 {
				frac++
			}
			var cat api.Sentiment
			switch {
			case frac < posEnd:
				cat = api.Positive
			case frac < neuEnd:
				cat = api.Neutral
			default:
				cat = api.Negative
			}
			c.cells[y][x] = cat
			b.WriteString(SeriesStyle(cat).Render("█"))
		}
		b.WriteByte('\n')
	}

	lines := 0
	for _, cat := range api.Sentiments {
		share := s.Share(cat)
		if share <= LabelThreshold {
			continue
		}
		b.WriteString(SeriesStyle(cat).Render("■ " + string(cat)))
		b.WriteString(axisStyle.Render(fmt.Sprintf(" %.1f%%", share)))
		b.WriteByte('\n')
		lines++
	}
	for ; lines < 3; lines++ {
		b.WriteByte('\n')
	}
	b.WriteString(axisStyle.Render(fmt.Sprintf("%d posts", s.Total)))

	return b.String()
}

// HitTest maps a pane-local cell coordinate to the slice it falls on in
// the latest render.
func (c *PieChart) HitTest(x, y int) (api.Sentiment, bool) {
	if y < 0 || y >= len(c.cells) || x < 0 || x >= len(c.cells[y]) {
		return "", false
	}
	cat := c.cells[y][x]
	if cat == "" {
		return "", false
	}
	return cat, true
}
