package usecase

import (
	"context"
	"fmt"
	"strings"

	"caribcart-client/internal/contextkeys"
	"caribcart-client/internal/core/domain"
	"caribcart-client/internal/core/port"
	"caribcart-client/internal/core/state"
)

// SubmitCredentialsUseCase posts the account credentials collected for a
// verified listing. Submission is gated behind an explicit confirmation:
// credentials are verified and changed after they are handed over.
type SubmitCredentialsUseCase struct {
	gateway  port.MarketplaceGatewayPort
	tokens   port.TokenProviderPort
	store    *state.Store
	notifier port.NotifierPort
	confirm  port.ConfirmPort
}

func NewSubmitCredentialsUseCase(gateway port.MarketplaceGatewayPort, tokens port.TokenProviderPort, store *state.Store, notifier port.NotifierPort, confirm port.ConfirmPort) *SubmitCredentialsUseCase {
	return &SubmitCredentialsUseCase{gateway: gateway, tokens: tokens, store: store, notifier: notifier, confirm: confirm}
}

func (uc *SubmitCredentialsUseCase) Execute(ctx context.Context, listing domain.Listing, credential []domain.FormField) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "SubmitCredentials",
		"listing_id": listing.ID,
	})

	if len(credential) == 0 {
		err := fmt.Errorf("please add at least one field")
		notifyError(uc.notifier, err)
		return err
	}
	for _, field := range credential {
		if strings.TrimSpace(field.Value) == "" {
			err := &domain.ValidationError{Field: field.Name}
			ucLogger.Warn("Credential set rejected client-side", port.Fields{"field": field.Name})
			notifyError(uc.notifier, err)
			return err
		}
	}

	ok, err := uc.confirm.Confirm(ctx, "Submit credentials?",
		fmt.Sprintf("Credentials for %s on %s will be verified and changed after submission. Are you sure you want to submit?", listing.Username, listing.Platform))
	if err != nil {
		return err
	}
	if !ok {
		ucLogger.Debug("Submission declined at the confirmation gate", nil)
		return ErrDeclined
	}

	token, err := uc.tokens.Token(ctx)
	if err != nil {
		ucLogger.Error("Token acquisition failed", err, nil)
		notifyError(uc.notifier, err)
		return err
	}

	msg, err := uc.gateway.SubmitCredentials(ctx, token, listing.ID, credential)
	if err != nil {
		ucLogger.Error("Gateway rejected the credential submission", err, nil)
		notifyError(uc.notifier, err)
		return err
	}

	ucLogger.Info("Credentials submitted", nil)
	uc.notifier.Success(msg)

	uc.store.FetchUserListings(ctx)
	return nil
}
