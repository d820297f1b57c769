// Package tui is the dashboard's update engine: the refresh scheduler,
// the per-panel fetch fan-out, and the stateful chart panes, all running
// on the single-threaded Bubble Tea timeline. Fetches execute as commands
// whose completion messages interleave on that timeline, so panels update
// independently and no locking is needed.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/FransDroid/sentiment-analysis-project/internal/api"
	"github.com/FransDroid/sentiment-analysis-project/internal/chart"
	"github.com/FransDroid/sentiment-analysis-project/internal/config"
	"github.com/FransDroid/sentiment-analysis-project/internal/snapshot"
	"github.com/FransDroid/sentiment-analysis-project/internal/trend"
)

// One refresh cycle fans out to: summary, trends, overview, and top posts
// for each of the three categories.
const requestsPerCycle = 6

// settleDelay coalesces bursts of resize events before refetching the
// data-bearing endpoints.
const settleDelay = 250 * time.Millisecond

type Model struct {
	cfg    *config.Config
	client *api.Client
	store  *snapshot.Store
	logger *slog.Logger

	width  int
	height int

	// chart state: geometry is rebuilt wholesale on resize, data domains
	// recomputed on every render
	trendChart *chart.TrendChart
	pieChart   *chart.PieChart

	// latest data per panel
	summary  *api.Summary
	points   []trend.Point
	posts    map[api.Sentiment][]api.Post
	overview *api.Overview

	// refresh cycle bookkeeping
	seq         int // newest started cycle; stale completions are dropped
	pending     int // outstanding requests of the current cycle
	cycleErrs   int
	manualCycle bool
	refreshing  bool
	firstCycle  bool
	lastUpdated time.Time

	// timerGen identifies the live periodic timer; ticks from older
	// generations are ignored, keeping one timer process-wide
	timerGen  int
	settleGen int

	spinner     spinner.Model
	tooltip     *tooltip
	notifs      []notification
	nextNotifID int
}

// RunOpts holds all collaborators for launching the dashboard.
type RunOpts struct {
	Cfg    *config.Config
	Client *api.Client
	Store  *snapshot.Store
	Logger *slog.Logger
}

func NewModel(opts RunOpts) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	m := &Model{
		cfg:        opts.Cfg,
		client:     opts.Client,
		store:      opts.Store,
		logger:     opts.Logger,
		spinner:    sp,
		posts:      make(map[api.Sentiment][]api.Post),
		firstCycle: true,
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	m.loadSnapshots()
	return m
}

// loadSnapshots preloads every panel from the last run's data so the
// dashboard is populated before the first cycle completes.
func (m *Model) loadSnapshots() {
	if m.store == nil {
		return
	}
	if s, _, err := m.store.LoadSummary(); err == nil {
		m.summary = &s
	}
	if pts, _, err := m.store.LoadTrend(); err == nil {
		m.points = pts
	}
	if o, _, err := m.store.LoadOverview(); err == nil {
		m.overview = &o
	}
	for _, s := range api.Sentiments {
		if ps, _, err := m.store.LoadPosts(s); err == nil {
			m.posts[s] = ps
		}
	}
}

func (m *Model) Init() tea.Cmd {
	// bumping the generation cancels any timer from a previous
	// initialization
	m.timerGen++
	cmds := append(m.startCycle(false), m.tickCmd(), m.spinner.Tick)
	return tea.Batch(cmds...)
}

func (m *Model) tickCmd() tea.Cmd {
	gen := m.timerGen
	return tea.Tick(m.cfg.RefreshDuration(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// startCycle begins a new refresh cycle and returns the fan-out commands.
// All requests run concurrently; each failure stays confined to its own
// panel.
func (m *Model) startCycle(manual bool) []tea.Cmd {
	m.seq++
	m.pending = requestsPerCycle
	m.cycleErrs = 0
	m.manualCycle = manual
	m.refreshing = true

	seq := m.seq
	cmds := []tea.Cmd{
		m.summaryCmd(seq, true),
		m.trendCmd(seq, true),
		m.overviewCmd(seq, true),
		m.spinner.Tick,
	}
	for _, s := range api.Sentiments {
		cmds = append(cmds, m.topPostsCmd(seq, true, s))
	}
	return cmds
}

func (m *Model) summaryCmd(seq int, cycle bool) tea.Cmd {
	client, cfg := m.client, m.cfg
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeoutDuration())
		defer cancel()
		data, err := client.Summary(ctx, cfg.Platform, cfg.GetSummaryHours())
		return summaryMsg{seq: seq, cycle: cycle, data: data, err: err}
	}
}

func (m *Model) trendCmd(seq int, cycle bool) tea.Cmd {
	client, cfg := m.client, m.cfg
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeoutDuration())
		defer cancel()
		samples, err := client.Trends(ctx, cfg.GetTrendDays())
		if err != nil {
			return trendMsg{seq: seq, cycle: cycle, err: err}
		}
		return trendMsg{seq: seq, cycle: cycle, points: trend.Aggregate(samples)}
	}
}

func (m *Model) topPostsCmd(seq int, cycle bool, sentiment api.Sentiment) tea.Cmd {
	client, cfg := m.client, m.cfg
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeoutDuration())
		defer cancel()
		posts, err := client.TopPosts(ctx, sentiment, cfg.GetTopPostsLimit())
		return topPostsMsg{seq: seq, cycle: cycle, sentiment: sentiment, posts: posts, err: err}
	}
}

func (m *Model) overviewCmd(seq int, cycle bool) tea.Cmd {
	client, cfg := m.client, m.cfg
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeoutDuration())
		defer cancel()
		data, err := client.Overview(ctx)
		return overviewMsg{seq: seq, cycle: cycle, data: data, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleResize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tickMsg:
		if msg.gen != m.timerGen {
			return m, nil
		}
		cmds := append(m.startCycle(false), m.tickCmd())
		return m, tea.Batch(cmds...)

	case settleMsg:
		if msg.gen != m.settleGen {
			return m, nil
		}
		// re-fetch the data-bearing subset so the rebuilt geometry is
		// immediately populated
		return m, tea.Batch(m.summaryCmd(m.seq, false), m.trendCmd(m.seq, false))

	case summaryMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		cmds := m.settle(msg.cycle, msg.err, "summary")
		if msg.err == nil {
			data := msg.data
			m.summary = &data
			if store := m.store; store != nil {
				cmds = append(cmds, func() tea.Msg {
					store.SaveSummary(data)
					return nil
				})
			}
		}
		return m, tea.Batch(cmds...)

	case trendMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		cmds := m.settle(msg.cycle, msg.err, "trend")
		if msg.err == nil {
			// full replacement, never an in-place mutation
			m.points = msg.points
			if store := m.store; store != nil {
				points := msg.points
				cmds = append(cmds, func() tea.Msg {
					store.SaveTrend(points)
					return nil
				})
			}
		}
		return m, tea.Batch(cmds...)

	case topPostsMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		cmds := m.settle(msg.cycle, msg.err, "posts:"+string(msg.sentiment))
		if msg.err == nil {
			m.posts[msg.sentiment] = msg.posts
			if store := m.store; store != nil {
				sentiment, posts := msg.sentiment, msg.posts
				cmds = append(cmds, func() tea.Msg {
					store.SavePosts(sentiment, posts)
					return nil
				})
			}
		}
		return m, tea.Batch(cmds...)

	case overviewMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		cmds := m.settle(msg.cycle, msg.err, "overview")
		if msg.err == nil {
			data := msg.data
			m.overview = &data
			if store := m.store; store != nil {
				cmds = append(cmds, func() tea.Msg {
					store.SaveOverview(data)
					return nil
				})
			}
		}
		return m, tea.Batch(cmds...)

	case notifExpiredMsg:
		m.removeNotification(msg.id)
		return m, nil

	case spinner.TickMsg:
		if m.refreshing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// settle records one completed request. Every request of a cycle settles
// exactly once, success or failure; the cycle joins when the last one
// does.
func (m *Model) settle(cycle bool, err error, panel string) []tea.Cmd {
	var cmds []tea.Cmd
	if err != nil {
		m.logger.Warn("fetch failed", "panel", panel, "error", err)
		if cycle {
			m.cycleErrs++
		}
	}
	if !cycle {
		return cmds
	}
	m.pending--
	if m.pending > 0 {
		return cmds
	}

	m.refreshing = false
	m.lastUpdated = time.Now()
	switch {
	case m.firstCycle && m.cycleErrs > 0:
		cmds = append(cmds, m.pushNotification(notifError, "initial load failed for some panels"))
	case m.manualCycle && m.cycleErrs == 0:
		cmds = append(cmds, m.pushNotification(notifSuccess, "dashboard refreshed"))
	}
	// later cyclic failures are logged only, to avoid banner spam
	m.firstCycle = false
	return cmds
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		if !m.refreshing {
			// manual refresh runs a full cycle without touching the timer
			return m, tea.Batch(m.startCycle(true)...)
		}
		return m, nil
	case "x":
		m.dismissOldest()
		return m, nil
	}
	return m, nil
}

// handleResize replaces both charts' geometry wholesale, then schedules
// the settle-delayed partial refetch.
func (m *Model) handleResize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	l := computeLayout(width, height, len(m.notifs))
	ti := l.trendCh.inner()
	pi := l.pieCh.inner()
	m.trendChart = chart.NewTrendChart(ti.w, ti.h)
	m.pieChart = chart.NewPieChart(pi.w, pi.h)
	m.clearTooltip()

	m.settleGen++
	gen := m.settleGen
	return tea.Tick(settleDelay, func(time.Time) tea.Msg {
		return settleMsg{gen: gen}
	})
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionMotion {
		return
	}
	l := computeLayout(m.width, m.height, len(m.notifs))

	if in := l.trendCh.inner(); m.trendChart != nil && in.contains(msg.X, msg.Y) {
		if hit, ok := m.trendChart.HitTest(msg.X-in.x, msg.Y-in.y); ok {
			m.setTooltip("trend", trendTooltipText(hit))
			return
		}
	}
	if in := l.pieCh.inner(); m.pieChart != nil && m.summary != nil && in.contains(msg.X, msg.Y) {
		if cat, ok := m.pieChart.HitTest(msg.X-in.x, msg.Y-in.y); ok {
			m.setTooltip("pie", pieTooltipText(cat, *m.summary))
			return
		}
	}
	m.clearTooltip()
}

// Run starts the dashboard.
func Run(opts RunOpts) error {
	m := NewModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
