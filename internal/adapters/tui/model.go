// Package tui renders the marketplace client in the terminal: the public
// catalogue, the user's listings with their balance, the listing editor and
// the credential and withdrawal dialogs. All listing data is read straight
// out of the shared store; the pages keep no copies beyond edit buffers.
package tui

import (
	"context"
	"time"

	"caribcart-client/internal/contextkeys"
	"caribcart-client/internal/core/port"
	"caribcart-client/internal/core/port/usecases_port"
	"caribcart-client/internal/core/state"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// -------------------- PAGES --------------------

type page int

const (
	pageLoading page = iota
	pageHome
	pageMyListings
	pageEditor
	pageCredentials
	pageWithdraw
	pageConfirm
)

// loadingDelay is how long the loading page stays up before it redirects.
const loadingDelay = 6 * time.Second

// noteDuration is how long a transient notification stays on screen.
const noteDuration = 4 * time.Second

// -------------------- MODEL --------------------

type Model struct {
	w, h int

	page     page
	prevPage page

	store         *state.Store
	saveUC        usecases_port.SaveListingUseCasePort
	credentialsUC usecases_port.SubmitCredentialsUseCasePort
	withdrawUC    usecases_port.WithdrawUseCasePort
	refreshUC     usecases_port.RefreshListingsUseCasePort

	notifier    *Notifier
	confirmGate *ConfirmGate
	logger      port.LoggerPort
	userCountry string

	spin          spinner.Model
	loadingTarget page

	selectedPublic int
	selectedOwn    int

	editor      *editorModel
	credentials *credentialForm
	withdraw    *withdrawForm

	confirmForm    *huh.Form
	confirmValue   *bool // heap-allocated: the model is copied on every update
	pendingConfirm *ConfirmRequest

	note    Notification
	noteSeq int

	busy bool // a submission is in flight
}

// Deps is everything the UI model needs wired in.
type Deps struct {
	Store       *state.Store
	SaveListing usecases_port.SaveListingUseCasePort
	Credentials usecases_port.SubmitCredentialsUseCasePort
	Withdraw    usecases_port.WithdrawUseCasePort
	Refresh     usecases_port.RefreshListingsUseCasePort
	Notifier    *Notifier
	ConfirmGate *ConfirmGate
	Logger      port.LoggerPort
	UserCountry string
}

func NewModel(deps Deps) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(cAccent2)

	return Model{
		page:          pageLoading,
		loadingTarget: pageHome,
		store:         deps.Store,
		saveUC:        deps.SaveListing,
		credentialsUC: deps.Credentials,
		withdrawUC:    deps.Withdraw,
		refreshUC:     deps.Refresh,
		notifier:      deps.Notifier,
		confirmGate:   deps.ConfirmGate,
		logger:        deps.Logger,
		userCountry:   deps.UserCountry,
		spin:          sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		m.notifier.listen(),
		m.confirmGate.listen(),
		m.refreshCmd(),
		redirectAfter(loadingDelay, m.loadingTarget),
	)
}

// requestCtx builds the context every user action runs under: the base
// logger plus a fresh trace ID.
func (m Model) requestCtx() context.Context {
	ctx := contextkeys.ContextWithLogger(context.Background(), m.logger)
	return contextkeys.ContextWithTraceID(ctx, uuid.NewString())
}

// -------------------- COMMANDS / MESSAGES --------------------

type publicFetchedMsg struct{}
type userFetchedMsg struct{}

type saveDoneMsg struct{ err error }
type credentialsDoneMsg struct{ err error }
type withdrawDoneMsg struct{ err error }

type redirectMsg struct{ target page }
type noteExpiredMsg struct{ seq int }

func (m Model) fetchPublicCmd() tea.Cmd {
	ctx := m.requestCtx()
	store := m.store
	return func() tea.Msg {
		store.FetchPublicListings(ctx)
		return publicFetchedMsg{}
	}
}

func (m Model) fetchUserCmd() tea.Cmd {
	ctx := m.requestCtx()
	store := m.store
	return func() tea.Msg {
		store.FetchUserListings(ctx)
		return userFetchedMsg{}
	}
}

// refreshCmd reloads both listing sets through the refresh use case. The
// user fetch runs first so the balance is current before the catalogue.
func (m Model) refreshCmd() tea.Cmd {
	ctx := m.requestCtx()
	uc := m.refreshUC
	return func() tea.Msg {
		uc.Execute(ctx)
		return userFetchedMsg{}
	}
}

func redirectAfter(d time.Duration, target page) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return redirectMsg{target: target}
	})
}

func expireNote(seq int) tea.Cmd {
	return tea.Tick(noteDuration, func(time.Time) tea.Msg {
		return noteExpiredMsg{seq: seq}
	})
}

// -------------------- UPDATE --------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case notificationMsg:
		m.note = Notification(msg)
		m.noteSeq++
		return m, tea.Batch(m.notifier.listen(), expireNote(m.noteSeq))

	case noteExpiredMsg:
		if msg.seq == m.noteSeq {
			m.note = Notification{}
		}
		return m, nil

	case confirmRequestMsg:
		req := ConfirmRequest(msg)
		m.pendingConfirm = &req
		m.confirmValue = new(bool)
		m.confirmForm = huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(req.Title).
				Description(req.Message).
				Affirmative("Submit").
				Negative("Cancel").
				Value(m.confirmValue),
		))
		m.prevPage = m.page
		m.page = pageConfirm
		return m, m.confirmForm.Init()

	case redirectMsg:
		if m.page == pageLoading {
			m.page = msg.target
		}
		return m, nil

	case publicFetchedMsg, userFetchedMsg:
		m.clampSelections()
		return m, nil

	case saveDoneMsg:
		m.busy = false
		m.clampSelections()
		if msg.err == nil {
			m.editor = nil
			m.page = pageMyListings
		}
		return m, nil

	case credentialsDoneMsg:
		m.busy = false
		m.clampSelections()
		if msg.err == nil {
			m.credentials = nil
			m.page = pageMyListings
		}
		return m, nil

	case withdrawDoneMsg:
		m.busy = false
		m.clampSelections()
		if msg.err == nil {
			m.withdraw = nil
			m.page = pageMyListings
		}
		return m, nil
	}

	if m.page == pageConfirm && m.confirmForm != nil {
		f, cmd := m.confirmForm.Update(msg)
		if form, ok := f.(*huh.Form); ok {
			m.confirmForm = form
		}
		if m.confirmForm.State == huh.StateCompleted {
			m.pendingConfirm.Answer(*m.confirmValue)
			m.pendingConfirm = nil
			m.confirmForm = nil
			m.confirmValue = nil
			m.page = m.prevPage
			return m, tea.Batch(cmd, m.confirmGate.listen())
		}
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}

	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch m.page {
	case pageHome:
		return m.handleHomeKey(key)
	case pageMyListings:
		return m.handleMyListingsKey(key)
	case pageEditor:
		return m.handleEditorKey(key)
	case pageCredentials:
		return m.handleCredentialsKey(key)
	case pageWithdraw:
		return m.handleWithdrawKey(key)
	}
	return m, nil
}

// clampSelections re-clamps both cursors against the current store
// snapshots. The use cases refresh the store synchronously before their
// done message arrives, so a listing set may have shrunk under a cursor.
func (m *Model) clampSelections() {
	m.selectedPublic = clamp(m.selectedPublic, len(m.store.Listings()))
	m.selectedOwn = clamp(m.selectedOwn, len(m.store.UserListings()))
}

func clamp(i, n int) int {
	if n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	if i < 0 {
		return 0
	}
	return i
}

// -------------------- VIEW --------------------

func (m Model) View() string {
	var body string
	switch m.page {
	case pageLoading:
		body = m.viewLoading()
	case pageHome:
		body = m.viewHome()
	case pageMyListings:
		body = m.viewMyListings()
	case pageEditor:
		body = m.viewEditor()
	case pageCredentials:
		body = m.viewCredentials()
	case pageWithdraw:
		body = m.viewWithdraw()
	case pageConfirm:
		if m.confirmForm != nil {
			body = panelStyle.Render(m.confirmForm.View())
		}
	}

	status := ""
	switch m.note.Kind {
	case noteError:
		status = errorStyle.Render(m.note.Message)
	case noteSuccess:
		status = successStyle.Render(m.note.Message)
	case noteInfo:
		status = helpStyle.Render(m.note.Message)
	}
	if m.busy {
		status = m.spin.View() + " saving..."
	}

	return appStyle.Render(body + "\n\n" + status)
}

func (m Model) viewLoading() string {
	return m.spin.View() + " loading"
}
