package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"caribcart-client/internal/contextkeys"
	"caribcart-client/internal/core/domain"
	"caribcart-client/internal/core/port"
	"caribcart-client/internal/core/state"
)

// WithdrawUseCase requests a payout of marketplace earnings. The bank
// detail set is fixed; every field and the amount are required. The same
// confirmation gate as the credential flow guards the request.
type WithdrawUseCase struct {
	gateway  port.MarketplaceGatewayPort
	tokens   port.TokenProviderPort
	store    *state.Store
	notifier port.NotifierPort
	confirm  port.ConfirmPort
}

func NewWithdrawUseCase(gateway port.MarketplaceGatewayPort, tokens port.TokenProviderPort, store *state.Store, notifier port.NotifierPort, confirm port.ConfirmPort) *WithdrawUseCase {
	return &WithdrawUseCase{gateway: gateway, tokens: tokens, store: store, notifier: notifier, confirm: confirm}
}

func (uc *WithdrawUseCase) Execute(ctx context.Context, account []domain.FormField, amount string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "Withdraw"})

	if len(account) == 0 {
		err := fmt.Errorf("please add at least one field")
		notifyError(uc.notifier, err)
		return err
	}
	if strings.TrimSpace(amount) == "" {
		err := &domain.ValidationError{Field: "Amount"}
		notifyError(uc.notifier, err)
		return err
	}
	for _, field := range account {
		if strings.TrimSpace(field.Value) == "" {
			err := &domain.ValidationError{Field: field.Name}
			ucLogger.Warn("Withdrawal rejected client-side", port.Fields{"field": field.Name})
			notifyError(uc.notifier, err)
			return err
		}
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(amount))
	if err != nil {
		err := fmt.Errorf("amount must be a whole number")
		notifyError(uc.notifier, err)
		return err
	}
	if parsed <= 0 {
		err := fmt.Errorf("amount must be greater than zero")
		notifyError(uc.notifier, err)
		return err
	}

	ok, err := uc.confirm.Confirm(ctx, "Withdraw funds?", "Are you sure you want to submit this withdrawal request?")
	if err != nil {
		return err
	}
	if !ok {
		ucLogger.Debug("Withdrawal declined at the confirmation gate", nil)
		return ErrDeclined
	}

	token, err := uc.tokens.Token(ctx)
	if err != nil {
		ucLogger.Error("Token acquisition failed", err, nil)
		notifyError(uc.notifier, err)
		return err
	}

	msg, err := uc.gateway.Withdraw(ctx, token, account, parsed)
	if err != nil {
		ucLogger.Error("Gateway rejected the withdrawal", err, nil)
		notifyError(uc.notifier, err)
		return err
	}

	ucLogger.Info("Withdrawal requested", port.Fields{"amount": parsed})
	uc.notifier.Success(msg)

	uc.store.FetchUserListings(ctx)
	return nil
}
