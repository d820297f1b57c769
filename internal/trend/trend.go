// Package trend turns raw time-bucketed classification counters into
// chart-ready multi-series points. Pure computation, no I/O.
package trend

import (
	"sort"
	"time"

	"github.com/FransDroid/sentiment-analysis-project/internal/api"
)

// Point holds the three series values at one instant. A point sequence is
// always sorted ascending by Time with at most one point per instant.
type Point struct {
	Time     time.Time
	Positive int
	Neutral  int
	Negative int
}

// Count returns the value of one series at this point.
func (p Point) Count(s api.Sentiment) int {
	switch s {
	case api.Positive:
		return p.Positive
	case api.Neutral:
		return p.Neutral
	case api.Negative:
		return p.Negative
	}
	return 0
}

// Aggregate groups samples by their resolved date+hour instant and
// accumulates counts into the matching series. Input order is irrelevant:
// accumulation is commutative, and the result is sorted ascending by
// timestamp. Samples with an unparseable date, an out-of-range hour or an
// unknown sentiment label are skipped. Empty input yields an empty slice.
func Aggregate(samples []api.RawSample) []Point {
	grouped := make(map[time.Time]*Point, len(samples))
	for _, s := range samples {
		ts, ok := resolve(s.Date, s.Hour)
		if !ok {
			continue
		}
		p := grouped[ts]
		if p == nil {
			p = &Point{Time: ts}
			grouped[ts] = p
		}
		switch api.Sentiment(s.Sentiment) {
		case api.Positive:
			p.Positive += s.Count
		case api.Neutral:
			p.Neutral += s.Count
		case api.Negative:
			p.Negative += s.Count
		}
	}

	points := make([]Point, 0, len(grouped))
	for _, p := range grouped {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	return points
}

func resolve(date string, hour int) (time.Time, bool) {
	if hour < 0 || hour > 23 {
		return time.Time{}, false
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return day.Add(time.Duration(hour) * time.Hour), true
}

// MaxCount returns the largest single-series value across all points,
// the upper bound of the trend chart's value domain.
func MaxCount(points []Point) int {
	max := 0
	for _, p := range points {
		for _, v := range []int{p.Positive, p.Neutral, p.Negative} {
			if v > max {
				max = v
			}
		}
	}
	return max
}
