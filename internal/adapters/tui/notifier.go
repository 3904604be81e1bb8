package tui

import tea "github.com/charmbracelet/bubbletea"

// Notification kinds
const (
	noteSuccess = "success"
	noteError   = "error"
	noteInfo    = "info"
)

// Notification is one transient message for the status line.
type Notification struct {
	Kind    string
	Message string
}

// Notifier implements port.NotifierPort. Usecases push from their own
// goroutines; the UI loop drains the channel through listen. The channel is
// buffered and overflow is dropped; a lost toast must never block a
// submission.
type Notifier struct {
	ch chan Notification
}

func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan Notification, 16)}
}

func (n *Notifier) Success(msg string) { n.push(noteSuccess, msg) }
func (n *Notifier) Error(msg string)   { n.push(noteError, msg) }
func (n *Notifier) Info(msg string)    { n.push(noteInfo, msg) }

func (n *Notifier) push(kind, msg string) {
	select {
	case n.ch <- Notification{Kind: kind, Message: msg}:
	default:
	}
}

type notificationMsg Notification

// listen waits for the next notification and hands it to the UI loop.
func (n *Notifier) listen() tea.Cmd {
	return func() tea.Msg {
		return notificationMsg(<-n.ch)
	}
}
