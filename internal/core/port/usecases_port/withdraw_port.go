package usecases_port

import (
	"context"

	"caribcart-client/internal/core/domain"
)

type WithdrawUseCasePort interface {
	// Execute validates the bank-detail set and the amount, asks for
	// confirmation and posts the withdrawal request. Returns ErrDeclined
	// when the user backs out.
	Execute(ctx context.Context, account []domain.FormField, amount string) error
}
