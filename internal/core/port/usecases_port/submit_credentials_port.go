package usecases_port

import (
	"context"

	"caribcart-client/internal/core/domain"
)

type SubmitCredentialsUseCasePort interface {
	// Execute validates the credential set, asks for confirmation and posts
	// it for the given listing. Returns ErrDeclined when the user backs out.
	Execute(ctx context.Context, listing domain.Listing, credential []domain.FormField) error
}
