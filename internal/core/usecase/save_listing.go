package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"caribcart-client/internal/constants"
	"caribcart-client/internal/contextkeys"
	"caribcart-client/internal/core/domain"
	"caribcart-client/internal/core/port"
	"caribcart-client/internal/core/state"
	"caribcart-client/internal/currency"
)

// SaveListingUseCase drives the listing editor: building the edit buffer
// for an existing listing, validating the form and submitting it as either
// a create or an update. After a successful save both listing fetches run
// so the shared state catches up with the gateway.
type SaveListingUseCase struct {
	gateway  port.MarketplaceGatewayPort
	tokens   port.TokenProviderPort
	store    *state.Store
	notifier port.NotifierPort
}

func NewSaveListingUseCase(gateway port.MarketplaceGatewayPort, tokens port.TokenProviderPort, store *state.Store, notifier port.NotifierPort) *SaveListingUseCase {
	return &SaveListingUseCase{gateway: gateway, tokens: tokens, store: store, notifier: notifier}
}

// FormFor builds the edit buffer for an existing listing. The listing must
// already be present in the loaded user listings; there is no fetch by ID.
// The stored price is converted from the listing's country into the
// reference currency for editing.
func (uc *SaveListingUseCase) FormFor(listingID string) (*domain.ListingForm, error) {
	listing, ok := uc.store.UserListing(listingID)
	if !ok {
		return nil, domain.ErrListingNotFound
	}

	price, err := currency.Convert(listing.Price, listing.Country, constants.ReferenceCountry)
	if err != nil {
		return nil, fmt.Errorf("failed to convert listing price: %w", err)
	}

	images := make([]domain.ListingImage, len(listing.Images))
	for i, url := range listing.Images {
		images[i] = domain.ListingImage{URL: url}
	}

	return &domain.ListingForm{
		ID:             listing.ID,
		Title:          listing.Title,
		Platform:       listing.Platform,
		Username:       listing.Username,
		FollowersCount: strconv.Itoa(listing.FollowersCount),
		EngagementRate: strconv.FormatFloat(listing.EngagementRate, 'f', -1, 64),
		MonthlyViews:   strconv.Itoa(listing.MonthlyViews),
		Niche:          listing.Niche,
		Price:          strconv.FormatFloat(price, 'f', -1, 64),
		Description:    listing.Description,
		Verified:       listing.Verified,
		Monetized:      listing.Monetized,
		Country:        listing.Country,
		AgeRange:       listing.AgeRange,
		Images:         images,
	}, nil
}

func (uc *SaveListingUseCase) Execute(ctx context.Context, form *domain.ListingForm) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SaveListing",
		"editing":  form.Editing(),
	})

	sub, err := uc.buildSubmission(form)
	if err != nil {
		ucLogger.Warn("Form rejected client-side", port.Fields{"reason": err.Error()})
		notifyError(uc.notifier, err)
		return err
	}

	token, err := uc.tokens.Token(ctx)
	if err != nil {
		ucLogger.Error("Token acquisition failed", err, nil)
		notifyError(uc.notifier, err)
		return err
	}

	var msg string
	if form.Editing() {
		msg, err = uc.gateway.UpdateListing(ctx, token, sub)
	} else {
		msg, err = uc.gateway.CreateListing(ctx, token, sub)
	}
	if err != nil {
		ucLogger.Error("Gateway rejected the listing", err, nil)
		notifyError(uc.notifier, err)
		return err
	}

	ucLogger.Info("Listing saved", port.Fields{"message": msg})
	uc.notifier.Success(msg)

	uc.store.FetchUserListings(ctx)
	uc.store.FetchPublicListings(ctx)
	return nil
}

// buildSubmission validates the form and assembles the request. Validation
// failures name the offending field and abort before any network work.
func (uc *SaveListingUseCase) buildSubmission(form *domain.ListingForm) (domain.ListingSubmission, error) {
	required := []struct {
		label string
		value string
	}{
		{"Title", form.Title},
		{"Platform", form.Platform},
		{"Username", form.Username},
		{"Niche", form.Niche},
		{"Followers Count", form.FollowersCount},
		{"Engagement Rate", form.EngagementRate},
		{"Monthly Views", form.MonthlyViews},
		{"Country", form.Country},
		{"Age Range", form.AgeRange},
		{"Price", form.Price},
		{"Description", form.Description},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return domain.ListingSubmission{}, &domain.ValidationError{Field: f.label}
		}
	}

	followers, err := strconv.Atoi(strings.TrimSpace(form.FollowersCount))
	if err != nil {
		return domain.ListingSubmission{}, fmt.Errorf("followers count must be a whole number")
	}
	views, err := strconv.Atoi(strings.TrimSpace(form.MonthlyViews))
	if err != nil {
		return domain.ListingSubmission{}, fmt.Errorf("monthly views must be a whole number")
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(form.EngagementRate), 64)
	if err != nil {
		return domain.ListingSubmission{}, fmt.Errorf("engagement rate must be a number")
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(form.Price), 64)
	if err != nil {
		return domain.ListingSubmission{}, fmt.Errorf("price must be a number")
	}

	if form.Editing() {
		// The price was edited in the reference currency; stored prices stay
		// denominated in the listing's own country.
		price, err = currency.Convert(price, constants.ReferenceCountry, form.Country)
		if err != nil {
			return domain.ListingSubmission{}, fmt.Errorf("failed to convert listing price: %w", err)
		}
	}

	return domain.ListingSubmission{
		ID:             form.ID,
		Title:          form.Title,
		Platform:       form.Platform,
		Username:       form.Username,
		FollowersCount: followers,
		EngagementRate: rate,
		MonthlyViews:   views,
		Niche:          form.Niche,
		Price:          price,
		Description:    form.Description,
		Verified:       form.Verified,
		Monetized:      form.Monetized,
		Country:        form.Country,
		AgeRange:       form.AgeRange,
		StoredImages:   form.StoredImages(),
		PendingImages:  form.PendingImages(),
	}, nil
}
