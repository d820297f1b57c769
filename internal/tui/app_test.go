package tui

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/FransDroid/sentiment-analysis-project/internal/api"
	"github.com/FransDroid/sentiment-analysis-project/internal/config"
	"github.com/FransDroid/sentiment-analysis-project/internal/trend"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return NewModel(RunOpts{
		Cfg:    &config.Config{BaseURL: "http://localhost:5000"},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// completeCycle delivers all six completion messages for the current
// cycle, with optional per-panel errors.
func completeCycle(m *Model, summaryErr, trendErr error) {
	seq := m.seq
	m.Update(summaryMsg{seq: seq, cycle: true, data: api.Summary{Positive: 50, Neutral: 30, Negative: 20, Total: 100}, err: summaryErr})
	m.Update(trendMsg{seq: seq, cycle: true, points: []trend.Point{{Time: time.Now(), Positive: 1}}, err: trendErr})
	m.Update(overviewMsg{seq: seq, cycle: true, data: api.Overview{Overall: api.Summary{Total: 100}}})
	for _, s := range api.Sentiments {
		m.Update(topPostsMsg{seq: seq, cycle: true, sentiment: s, posts: []api.Post{{ID: string(s)}}})
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestFailureStaysInItsPanel(t *testing.T) {
	m := newTestModel(t)
	m.startCycle(false)

	completeCycle(m, nil, errors.New("trends endpoint down"))

	if m.summary == nil || m.summary.Total != 100 {
		t.Error("summary panel should have updated despite the trend failure")
	}
	if m.points != nil {
		t.Error("trend panel should keep its previous (empty) data on failure")
	}
	if m.overview == nil {
		t.Error("overview panel should have updated")
	}
	for _, s := range api.Sentiments {
		if len(m.posts[s]) != 1 {
			t.Errorf("posts panel %s should have updated", s)
		}
	}
	if m.refreshing {
		t.Error("cycle should join even when a request failed")
	}
}

func TestCycleJoinSetsLastUpdated(t *testing.T) {
	m := newTestModel(t)
	m.startCycle(false)

	seq := m.seq
	m.Update(summaryMsg{seq: seq, cycle: true, data: api.Summary{Total: 1}})
	m.Update(trendMsg{seq: seq, cycle: true})
	m.Update(overviewMsg{seq: seq, cycle: true})
	m.Update(topPostsMsg{seq: seq, cycle: true, sentiment: api.Positive})
	m.Update(topPostsMsg{seq: seq, cycle: true, sentiment: api.Neutral})

	if !m.lastUpdated.IsZero() {
		t.Fatal("lastUpdated must not move before the final request settles")
	}
	if !m.refreshing {
		t.Fatal("cycle should still be in flight with one request pending")
	}

	m.Update(topPostsMsg{seq: seq, cycle: true, sentiment: api.Negative})
	if m.lastUpdated.IsZero() {
		t.Error("lastUpdated should be set when the last request settles")
	}
	if m.refreshing {
		t.Error("refreshing should clear on join")
	}
}

func TestStaleCycleCompletionsDropped(t *testing.T) {
	m := newTestModel(t)
	m.startCycle(false)
	oldSeq := m.seq
	m.startCycle(false) // supersedes the first cycle

	m.Update(summaryMsg{seq: oldSeq, cycle: true, data: api.Summary{Total: 999}})
	if m.summary != nil {
		t.Error("completion from a superseded cycle must not touch panel data")
	}
	if m.pending != requestsPerCycle {
		t.Errorf("stale completion must not count toward the join, pending = %d", m.pending)
	}
}

func TestStaleTimerTickIgnored(t *testing.T) {
	m := newTestModel(t)
	m.timerGen = 3
	seqBefore := m.seq

	_, cmd := m.Update(tickMsg{gen: 2})
	if m.seq != seqBefore {
		t.Error("tick from a superseded timer must not start a cycle")
	}
	if cmd != nil {
		t.Error("stale tick must not re-arm the timer")
	}

	_, cmd = m.Update(tickMsg{gen: 3})
	if m.seq != seqBefore+1 {
		t.Error("live tick should start a cycle")
	}
	if cmd == nil {
		t.Error("live tick should re-arm the timer and fan out fetches")
	}
}

func TestManualRefreshKey(t *testing.T) {
	m := newTestModel(t)
	m.refreshing = false
	seqBefore := m.seq

	_, cmd := m.Update(keyMsg("r"))
	if m.seq != seqBefore+1 || !m.manualCycle {
		t.Error("r should start a manual cycle")
	}
	if cmd == nil {
		t.Error("manual cycle should fan out fetch commands")
	}

	// a second press while in flight is a no-op
	_, _ = m.Update(keyMsg("r"))
	if m.seq != seqBefore+1 {
		t.Error("manual refresh must not stack while a cycle is in flight")
	}
}

func TestManualCycleSuccessBanner(t *testing.T) {
	m := newTestModel(t)
	m.firstCycle = false
	m.startCycle(true)

	completeCycle(m, nil, nil)
	if len(m.notifs) != 1 || m.notifs[0].level != notifSuccess {
		t.Fatalf("expected one success banner, got %+v", m.notifs)
	}
}

func TestFirstCycleFailureBanner(t *testing.T) {
	m := newTestModel(t)
	m.startCycle(false)
	completeCycle(m, errors.New("api down"), nil)

	if len(m.notifs) != 1 || m.notifs[0].level != notifError {
		t.Fatalf("expected one error banner on first-cycle failure, got %+v", m.notifs)
	}

	// later periodic failures are logged, not surfaced
	m.startCycle(false)
	completeCycle(m, errors.New("api still down"), nil)
	if len(m.notifs) != 1 {
		t.Errorf("later cyclic failures must not add banners, got %d", len(m.notifs))
	}
}

func TestNotificationExpiryMatchesID(t *testing.T) {
	m := newTestModel(t)
	m.pushNotification(notifSuccess, "first")
	m.pushNotification(notifError, "second")
	firstID := m.notifs[0].id

	m.Update(notifExpiredMsg{id: firstID})
	if len(m.notifs) != 1 || m.notifs[0].text != "second" {
		t.Errorf("expiry should remove only the matching banner, got %+v", m.notifs)
	}

	// an expiry for an already-dismissed id is harmless
	m.Update(notifExpiredMsg{id: firstID})
	if len(m.notifs) != 1 {
		t.Errorf("repeated expiry changed state: %+v", m.notifs)
	}
}

func TestDismissKeyDropsOldest(t *testing.T) {
	m := newTestModel(t)
	m.pushNotification(notifSuccess, "older")
	m.pushNotification(notifSuccess, "newer")

	m.Update(keyMsg("x"))
	if len(m.notifs) != 1 || m.notifs[0].text != "newer" {
		t.Errorf("x should dismiss the oldest banner, got %+v", m.notifs)
	}

	m.Update(keyMsg("x"))
	m.Update(keyMsg("x")) // no banners left
	if len(m.notifs) != 0 {
		t.Errorf("expected no banners, got %+v", m.notifs)
	}
}

func TestResizeRebuildsChartsAndSchedulesSettle(t *testing.T) {
	m := newTestModel(t)
	m.setTooltip("trend", "stale")

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.trendChart == nil || m.pieChart == nil {
		t.Fatal("resize should build both charts")
	}
	if m.tooltip != nil {
		t.Error("resize should clear the tooltip")
	}
	if cmd == nil {
		t.Error("resize should schedule the settle refetch")
	}

	l := computeLayout(100, 40, 0)
	if in := l.trendCh.inner(); m.trendChart.Width() != in.w || m.trendChart.Height() != in.h {
		t.Errorf("trend chart %dx%d does not match layout inner %dx%d",
			m.trendChart.Width(), m.trendChart.Height(), in.w, in.h)
	}
}

func TestSettleCoalescesResizeBursts(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	staleGen := m.settleGen
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	_, cmd := m.Update(settleMsg{gen: staleGen})
	if cmd != nil {
		t.Error("settle from a superseded resize must not refetch")
	}

	_, cmd = m.Update(settleMsg{gen: m.settleGen})
	if cmd == nil {
		t.Error("live settle should issue the partial refetch")
	}
}

func TestPartialRefetchSkipsJoin(t *testing.T) {
	m := newTestModel(t)
	m.startCycle(false)
	pendingBefore := m.pending

	// post-resize refetch completions carry cycle=false
	m.Update(summaryMsg{seq: m.seq, cycle: false, data: api.Summary{Total: 42}})
	if m.pending != pendingBefore {
		t.Errorf("partial refetch must not count toward the join, pending = %d", m.pending)
	}
	if m.summary == nil || m.summary.Total != 42 {
		t.Error("partial refetch should still update the panel")
	}
	if !m.lastUpdated.IsZero() {
		t.Error("partial refetch must not move lastUpdated")
	}
}

func TestTooltipAtMostOne(t *testing.T) {
	m := newTestModel(t)

	m.setTooltip("trend", "a")
	m.setTooltip("pie", "b")
	if m.tooltip == nil || m.tooltip.pane != "pie" || m.tooltip.text != "b" {
		t.Errorf("new tooltip should replace the old, got %+v", m.tooltip)
	}

	m.clearTooltip()
	if m.tooltip != nil {
		t.Error("tooltip should clear")
	}
}

func TestMouseMotionOffChartsClearsTooltip(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.setTooltip("trend", "lingering")

	// motion over the header, outside both chart panes
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if m.tooltip != nil {
		t.Error("motion off the charts should clear the tooltip")
	}

	// non-motion mouse events leave the tooltip alone
	m.setTooltip("pie", "kept")
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress})
	if m.tooltip == nil {
		t.Error("press events must not disturb the tooltip")
	}
}

func TestLayoutChartGeometryIgnoresBanners(t *testing.T) {
	plain := computeLayout(100, 40, 0)
	banners := computeLayout(100, 40, 2)

	if plain.trendCh != banners.trendCh || plain.pieCh != banners.pieCh {
		t.Error("chart geometry must not depend on the banner count")
	}
	if banners.posts.h >= plain.posts.h {
		t.Error("banners should squeeze the posts region")
	}
	if plain.trendCh.w+plain.pieCh.w > 100 {
		t.Errorf("chart panes overflow the width: %d + %d", plain.trendCh.w, plain.pieCh.w)
	}
}

func TestTooltipText(t *testing.T) {
	s := api.Summary{Positive: 45.2, Neutral: 32.1, Negative: 22.7, Total: 1000}
	got := pieTooltipText(api.Positive, s)
	want := "● positive · 45.2% · ~452 posts"
	if got != want {
		t.Errorf("pieTooltipText = %q, want %q", got, want)
	}
}
