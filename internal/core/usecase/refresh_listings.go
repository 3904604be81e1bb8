package usecase

import (
	"context"

	"caribcart-client/internal/contextkeys"
	"caribcart-client/internal/core/port"
	"caribcart-client/internal/core/state"
)

// RefreshListingsUseCase resynchronizes the listing state after a
// successful submission: the user's listings (with balance) first, then the
// public catalogue. Each fetch fully replaces its slice of the store.
type RefreshListingsUseCase struct {
	store *state.Store
}

func NewRefreshListingsUseCase(store *state.Store) *RefreshListingsUseCase {
	return &RefreshListingsUseCase{store: store}
}

func (uc *RefreshListingsUseCase) Execute(ctx context.Context) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "RefreshListings"})

	ucLogger.Debug("Refreshing listing state", nil)
	uc.store.FetchUserListings(ctx)
	uc.store.FetchPublicListings(ctx)
}
