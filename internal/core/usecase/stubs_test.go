package usecase

import (
	"context"

	"caribcart-client/internal/core/domain"
	"caribcart-client/internal/core/state"
)

// recordingGateway captures every outbound call for assertions.
type recordingGateway struct {
	msg string
	err error

	userListings []domain.Listing
	balance      domain.Balance

	publicCalls   int
	userCalls     int
	createCalls   int
	updateCalls   int
	credCalls     int
	withdrawCalls int

	lastToken      string
	lastSub        domain.ListingSubmission
	lastListingID  string
	lastCredential []domain.FormField
	lastAccount    []domain.FormField
	lastAmount     int
}

func (g *recordingGateway) FetchPublicListings(ctx context.Context) ([]domain.Listing, error) {
	g.publicCalls++
	return nil, nil
}

func (g *recordingGateway) FetchUserListings(ctx context.Context, token string) ([]domain.Listing, domain.Balance, error) {
	g.userCalls++
	return g.userListings, g.balance, nil
}

func (g *recordingGateway) CreateListing(ctx context.Context, token string, sub domain.ListingSubmission) (string, error) {
	g.createCalls++
	g.lastToken = token
	g.lastSub = sub
	return g.msg, g.err
}

func (g *recordingGateway) UpdateListing(ctx context.Context, token string, sub domain.ListingSubmission) (string, error) {
	g.updateCalls++
	g.lastToken = token
	g.lastSub = sub
	return g.msg, g.err
}

func (g *recordingGateway) SubmitCredentials(ctx context.Context, token, listingID string, credential []domain.FormField) (string, error) {
	g.credCalls++
	g.lastToken = token
	g.lastListingID = listingID
	g.lastCredential = credential
	return g.msg, g.err
}

func (g *recordingGateway) Withdraw(ctx context.Context, token string, account []domain.FormField, amount int) (string, error) {
	g.withdrawCalls++
	g.lastToken = token
	g.lastAccount = account
	g.lastAmount = amount
	return g.msg, g.err
}

type stubTokens struct {
	token string
	err   error
}

func (t *stubTokens) Token(ctx context.Context) (string, error) { return t.token, t.err }

// recordingNotifier captures toasts.
type recordingNotifier struct {
	successes []string
	errors    []string
	infos     []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }
func (n *recordingNotifier) Info(msg string)    { n.infos = append(n.infos, msg) }

// scriptedConfirm answers every question the same way.
type scriptedConfirm struct {
	answer bool
	err    error

	calls     int
	lastTitle string
}

func (c *scriptedConfirm) Confirm(ctx context.Context, title, message string) (bool, error) {
	c.calls++
	c.lastTitle = title
	return c.answer, c.err
}

// loadedStore builds a store whose user listings are already fetched.
func loadedStore(gw *recordingGateway, tokens *stubTokens) *state.Store {
	store := state.NewStore(gw, tokens, nil)
	if len(gw.userListings) > 0 {
		store.FetchUserListings(context.Background())
		gw.userCalls = 0
	}
	return store
}
