package tui

type rect struct {
	x, y, w, h int
}

func (r rect) contains(px, py int) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

// inner returns the content area of a bordered pane with a title line.
func (r rect) inner() rect {
	return rect{x: r.x + 1, y: r.y + 2, w: r.w - 2, h: r.h - 3}
}

// screen regions, top to bottom: header, summary cards, charts, platform
// overview, top posts, notifications, status bar
type layout struct {
	header   rect
	cards    rect
	trendCh  rect
	pieCh    rect
	overview rect
	posts    rect
	notifs   rect
	status   rect
}

const (
	headerHeight   = 1
	cardsHeight    = 4
	overviewHeight = 4
	statusHeight   = 1
	minChartsH     = 8
	minPostsH      = 4
)

// computeLayout slices the screen. Chart geometry depends only on the
// terminal size, never on the notification count; banners squeeze the
// posts region instead.
func computeLayout(width, height, notifLines int) layout {
	fixed := headerHeight + cardsHeight + overviewHeight + statusHeight
	free := height - fixed
	if free < minChartsH+minPostsH {
		free = minChartsH + minPostsH
	}

	chartsH := free / 2
	if chartsH < minChartsH {
		chartsH = minChartsH
	}
	postsH := free - chartsH - notifLines
	if postsH < minPostsH {
		postsH = minPostsH
	}

	trendW := width * 2 / 3
	if trendW < 20 {
		trendW = 20
	}
	pieW := width - trendW
	if pieW < 14 {
		pieW = 14
	}

	y := 0
	l := layout{}
	l.header = rect{0, y, width, headerHeight}
	y += headerHeight
	l.cards = rect{0, y, width, cardsHeight}
	y += cardsHeight
	l.trendCh = rect{0, y, trendW, chartsH}
	l.pieCh = rect{trendW, y, pieW, chartsH}
	y += chartsH
	l.overview = rect{0, y, width, overviewHeight}
	y += overviewHeight
	l.posts = rect{0, y, width, postsH}
	y += postsH
	l.notifs = rect{0, y, width, notifLines}
	y += notifLines
	l.status = rect{0, y, width, statusHeight}
	return l
}
