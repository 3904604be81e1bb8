package usecases_port

import (
	"context"

	"caribcart-client/internal/core/domain"
)

type SaveListingUseCasePort interface {
	// FormFor builds the edit buffer for an existing listing, converting the
	// stored price into the reference currency. Returns
	// domain.ErrListingNotFound when the ID is not loaded.
	FormFor(listingID string) (*domain.ListingForm, error)

	// Execute validates and submits the form, then refreshes the listing
	// state. The returned error is already surfaced to the notifier.
	Execute(ctx context.Context, form *domain.ListingForm) error
}
