package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmRequest is one pending question for the user. The usecase
// goroutine blocks on reply until the UI answers.
type ConfirmRequest struct {
	Title   string
	Message string
	reply   chan bool
}

// Answer resolves the request. Must be called exactly once.
func (r ConfirmRequest) Answer(ok bool) {
	r.reply <- ok
}

// ConfirmGate implements port.ConfirmPort for the terminal UI. Confirm is
// called from usecase goroutines; the request crosses over to the UI loop,
// which renders a blocking dialog and sends the decision back. The dialog
// stays up until the user explicitly accepts or declines.
type ConfirmGate struct {
	requests chan ConfirmRequest
}

func NewConfirmGate() *ConfirmGate {
	return &ConfirmGate{requests: make(chan ConfirmRequest)}
}

func (g *ConfirmGate) Confirm(ctx context.Context, title, message string) (bool, error) {
	req := ConfirmRequest{Title: title, Message: message, reply: make(chan bool, 1)}

	select {
	case g.requests <- req:
	case <-ctx.Done():
		return false, ctx.Err()
	}

	select {
	case ok := <-req.reply:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

type confirmRequestMsg ConfirmRequest

// listen waits for the next confirmation request and hands it to the UI
// loop.
func (g *ConfirmGate) listen() tea.Cmd {
	return func() tea.Msg {
		return confirmRequestMsg(<-g.requests)
	}
}
