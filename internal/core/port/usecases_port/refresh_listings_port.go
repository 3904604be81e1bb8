package usecases_port

import "context"

type RefreshListingsUseCasePort interface {
	// Execute re-fetches the user's listings (with balance) and the public
	// catalogue, fully replacing both in the store.
	Execute(ctx context.Context)
}
