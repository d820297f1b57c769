package tui

import (
	"github.com/FransDroid/sentiment-analysis-project/internal/api"
	"github.com/FransDroid/sentiment-analysis-project/internal/trend"
)

// tickMsg drives the periodic refresh. gen identifies the timer that sent
// it; ticks from a superseded timer are ignored, which keeps exactly one
// periodic timer live.
type tickMsg struct {
	gen int
}

// settleMsg fires after the post-resize settle delay.
type settleMsg struct {
	gen int
}

// Fetch completion messages. Each routes to exactly one panel. seq is the
// refresh cycle that issued the request; completions from superseded
// cycles are discarded. cycle is false for the partial refetch after a
// resize, which doesn't count toward the cycle join.

type summaryMsg struct {
	seq   int
	cycle bool
	data  api.Summary
	err   error
}

type trendMsg struct {
	seq    int
	cycle  bool
	points []trend.Point
	err    error
}

type topPostsMsg struct {
	seq       int
	cycle     bool
	sentiment api.Sentiment
	posts     []api.Post
	err       error
}

type overviewMsg struct {
	seq   int
	cycle bool
	data  api.Overview
	err   error
}

// notifExpiredMsg retires one notification by id.
type notifExpiredMsg struct {
	id int
}
