package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/FransDroid/sentiment-analysis-project/internal/api"
	"github.com/FransDroid/sentiment-analysis-project/internal/trend"
)

func hourly(base time.Time, counts ...[3]int) []trend.Point {
	points := make([]trend.Point, len(counts))
	for i, c := range counts {
		points[i] = trend.Point{
			Time:     base.Add(time.Duration(i) * time.Hour),
			Positive: c[0],
			Neutral:  c[1],
			Negative: c[2],
		}
	}
	return points
}

func TestTrendEmptyState(t *testing.T) {
	c := NewTrendChart(40, 10)
	out := c.Render(nil)

	if !strings.Contains(out, "no trend data yet") {
		t.Error("empty render should contain the placeholder text")
	}
	for _, s := range api.Sentiments {
		if strings.Contains(out, string(s)) {
			t.Errorf("empty render should not contain legend entry %q", s)
		}
	}
	if strings.ContainsRune(out, '●') {
		t.Error("empty render should not contain point markers")
	}
}

func TestTrendRenderIdempotent(t *testing.T) {
	c := NewTrendChart(50, 12)
	points := hourly(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		[3]int{5, 3, 1}, [3]int{2, 4, 6}, [3]int{9, 1, 0})

	first := c.Render(points)
	second := c.Render(points)
	if first != second {
		t.Error("repeated render with identical input changed the output")
	}
}

func TestTrendRenderContainsLegendAndMarkers(t *testing.T) {
	c := NewTrendChart(50, 12)
	points := hourly(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		[3]int{5, 3, 1}, [3]int{2, 4, 6})

	out := c.Render(points)
	for _, s := range api.Sentiments {
		if !strings.Contains(out, string(s)) {
			t.Errorf("render should contain legend entry %q", s)
		}
	}
	if !strings.ContainsRune(out, '●') {
		t.Error("render should contain point markers")
	}
}

func TestTrendSinglePointDomain(t *testing.T) {
	c := NewTrendChart(40, 10)
	points := hourly(time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC), [3]int{4, 2, 1})

	out := c.Render(points)
	if !strings.ContainsRune(out, '●') {
		t.Error("single-point render should still draw markers")
	}
}

func TestTrendResizeReplacesGeometry(t *testing.T) {
	c := NewTrendChart(40, 10)
	points := hourly(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		[3]int{5, 3, 1}, [3]int{2, 4, 6})
	c.Render(points)

	c.Resize(80, 20)
	if c.Width() != 80 || c.Height() != 20 {
		t.Fatalf("resize not applied: %dx%d", c.Width(), c.Height())
	}
	if _, ok := c.HitTest(10, 5); ok {
		t.Error("hit test should miss after resize invalidates rendered state")
	}

	// render works immediately against the new geometry
	out := c.Render(points)
	if !strings.ContainsRune(out, '●') {
		t.Error("post-resize render should draw markers")
	}
}

func TestTrendHitTest(t *testing.T) {
	c := NewTrendChart(60, 14)
	points := hourly(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		[3]int{10, 5, 2}, [3]int{4, 8, 6}, [3]int{7, 3, 9})
	c.Render(points)

	if len(c.markers) == 0 {
		t.Fatal("render recorded no markers")
	}
	m := c.markers[0]
	hit, ok := c.HitTest(m.col+gutter, m.row)
	if !ok {
		t.Fatal("expected a hit on a marker cell")
	}
	if hit != m.hit {
		t.Errorf("hit = %+v, want %+v", hit, m.hit)
	}

	if _, ok := c.HitTest(-10, -10); ok {
		t.Error("expected miss far outside the plot")
	}
}
