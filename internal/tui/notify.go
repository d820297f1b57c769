package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type notifLevel int

const (
	notifSuccess notifLevel = iota
	notifError
)

const (
	successNotifTimeout = 3 * time.Second
	errorNotifTimeout   = 8 * time.Second
)

// notification is one transient banner. Several may coexist; each
// self-removes after its timeout or on explicit dismissal, without
// touching the others.
type notification struct {
	id    int
	level notifLevel
	text  string
}

// pushNotification appends a banner and returns the command that expires
// it. Only the banner with the matching id is removed on expiry.
func (m *Model) pushNotification(level notifLevel, text string) tea.Cmd {
	m.nextNotifID++
	id := m.nextNotifID
	m.notifs = append(m.notifs, notification{id: id, level: level, text: text})

	timeout := successNotifTimeout
	if level == notifError {
		timeout = errorNotifTimeout
	}
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return notifExpiredMsg{id: id}
	})
}

func (m *Model) removeNotification(id int) {
	for i, n := range m.notifs {
		if n.id == id {
			m.notifs = append(m.notifs[:i], m.notifs[i+1:]...)
			return
		}
	}
}

// dismissOldest drops the banner that has been visible longest.
func (m *Model) dismissOldest() {
	if len(m.notifs) > 0 {
		m.notifs = m.notifs[1:]
	}
}

func renderNotifications(notifs []notification, width int) string {
	var out string
	for i, n := range notifs {
		style := notifSuccessStyle
		prefix := "✓ "
		if n.level == notifError {
			style = notifErrorStyle
			prefix = "✗ "
		}
		if i > 0 {
			out += "\n"
		}
		out += style.Width(width).Render(prefix + n.text)
	}
	return out
}
