package port

import (
	"context"

	"caribcart-client/internal/core/domain"
)

// MarketplaceGatewayPort is the outbound contract to the marketplace API
// gateway. Authenticated operations take the bearer token explicitly; the
// caller acquires a fresh one immediately before each call.
type MarketplaceGatewayPort interface {
	// FetchPublicListings reads the public catalogue. No authentication.
	FetchPublicListings(ctx context.Context) ([]domain.Listing, error)

	// FetchUserListings reads the caller's own listings together with the
	// server-computed balance.
	FetchUserListings(ctx context.Context, token string) ([]domain.Listing, domain.Balance, error)

	// CreateListing submits a new listing. Returns the gateway's message.
	CreateListing(ctx context.Context, token string, sub domain.ListingSubmission) (string, error)

	// UpdateListing re-submits an existing listing (sub.ID is set).
	UpdateListing(ctx context.Context, token string, sub domain.ListingSubmission) (string, error)

	// SubmitCredentials posts a credential field set for a listing.
	SubmitCredentials(ctx context.Context, token string, listingID string, credential []domain.FormField) (string, error)

	// Withdraw requests a payout of marketplace earnings.
	Withdraw(ctx context.Context, token string, account []domain.FormField, amount int) (string, error)
}

// TokenProviderPort yields a bearer token from the external identity
// service. Tokens are short-lived; implementations do not cache.
type TokenProviderPort interface {
	Token(ctx context.Context) (string, error)
}
