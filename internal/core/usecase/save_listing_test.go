package usecase

import (
	"context"
	"errors"
	"testing"

	"caribcart-client/internal/core/domain"
)

func validForm() *domain.ListingForm {
	return &domain.ListingForm{
		Title:          "Family Cooking Channel",
		Platform:       "Youtube",
		Username:       "cookswithtrish",
		FollowersCount: "12500",
		EngagementRate: "4.2",
		MonthlyViews:   "80000",
		Niche:          "Cooking",
		Price:          "5000",
		Description:    "Weekly uploads, engaged audience.",
		Country:        "Trinidad & Tobago",
		AgeRange:       "25-34",
	}
}

func TestFormForUnknownListing(t *testing.T) {
	gw := &recordingGateway{}
	tokens := &stubTokens{token: "jwt-1"}
	uc := NewSaveListingUseCase(gw, tokens, loadedStore(gw, tokens), &recordingNotifier{})

	if _, err := uc.FormFor("nope"); !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound got %v", err)
	}
}

func TestFormForConvertsPriceToReferenceCurrency(t *testing.T) {
	gw := &recordingGateway{userListings: []domain.Listing{{
		ID:             "lst-1",
		Title:          "Island Vibes",
		Platform:       "Instagram",
		Username:       "islandvibes",
		FollowersCount: 400,
		EngagementRate: 2.5,
		MonthlyViews:   9000,
		Niche:          "Travel",
		Price:          155, // JMD
		Description:    "d",
		Country:        "Jamaica",
		AgeRange:       "18-24",
		Images:         []string{"https://cdn/a.png"},
	}}}
	tokens := &stubTokens{token: "jwt-1"}
	uc := NewSaveListingUseCase(gw, tokens, loadedStore(gw, tokens), &recordingNotifier{})

	form, err := uc.FormFor("lst-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 155 JMD is 1 USD is 6.75 in the reference currency.
	if form.Price != "6.75" {
		t.Fatalf("expected price 6.75 got %q", form.Price)
	}
	if form.FollowersCount != "400" || form.MonthlyViews != "9000" {
		t.Fatalf("numeric fields not rendered: %+v", form)
	}
	if len(form.Images) != 1 || !form.Images[0].Stored() {
		t.Fatalf("expected one stored image, got %+v", form.Images)
	}
}

func TestExecuteNamesTheMissingField(t *testing.T) {
	gw := &recordingGateway{}
	tokens := &stubTokens{token: "jwt-1"}
	notifier := &recordingNotifier{}
	uc := NewSaveListingUseCase(gw, tokens, loadedStore(gw, tokens), notifier)

	form := validForm()
	form.Platform = ""

	err := uc.Execute(context.Background(), form)
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "Platform" {
		t.Fatalf("expected a validation error naming Platform, got %v", err)
	}
	if gw.createCalls != 0 || gw.updateCalls != 0 {
		t.Fatal("an invalid form must not reach the gateway")
	}
	if len(notifier.errors) != 1 {
		t.Fatalf("expected one error toast got %v", notifier.errors)
	}
}

func TestExecuteRejectsNonNumericInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.ListingForm)
		want   string
	}{
		{"followers", func(f *domain.ListingForm) { f.FollowersCount = "12k" }, "followers count must be a whole number"},
		{"views", func(f *domain.ListingForm) { f.MonthlyViews = "80.5" }, "monthly views must be a whole number"},
		{"rate", func(f *domain.ListingForm) { f.EngagementRate = "high" }, "engagement rate must be a number"},
		{"price", func(f *domain.ListingForm) { f.Price = "five grand" }, "price must be a number"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &recordingGateway{}
			tokens := &stubTokens{token: "jwt-1"}
			uc := NewSaveListingUseCase(gw, tokens, loadedStore(gw, tokens), &recordingNotifier{})

			form := validForm()
			tc.mutate(form)

			err := uc.Execute(context.Background(), form)
			if err == nil || err.Error() != tc.want {
				t.Fatalf("expected %q got %v", tc.want, err)
			}
			if gw.createCalls != 0 {
				t.Fatal("an invalid form must not reach the gateway")
			}
		})
	}
}

func TestExecuteCreates(t *testing.T) {
	gw := &recordingGateway{msg: "listing created"}
	tokens := &stubTokens{token: "jwt-1"}
	notifier := &recordingNotifier{}
	uc := NewSaveListingUseCase(gw, tokens, loadedStore(gw, tokens), notifier)

	if err := uc.Execute(context.Background(), validForm()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gw.createCalls != 1 || gw.updateCalls != 0 {
		t.Fatalf("expected one create, got create=%d update=%d", gw.createCalls, gw.updateCalls)
	}
	if gw.lastToken != "jwt-1" {
		t.Fatalf("expected the fresh token, got %q", gw.lastToken)
	}
	// The reference country needs no conversion on create.
	if gw.lastSub.Price != 5000 {
		t.Fatalf("expected price 5000 got %v", gw.lastSub.Price)
	}
	if len(notifier.successes) != 1 || notifier.successes[0] != "listing created" {
		t.Fatalf("expected the gateway message as a success toast, got %v", notifier.successes)
	}
	// Both listing sets refresh after a save.
	if gw.userCalls != 1 || gw.publicCalls != 1 {
		t.Fatalf("expected both fetches, got user=%d public=%d", gw.userCalls, gw.publicCalls)
	}
}

func TestExecuteEditConvertsPriceBack(t *testing.T) {
	gw := &recordingGateway{msg: "listing updated"}
	tokens := &stubTokens{token: "jwt-1"}
	uc := NewSaveListingUseCase(gw, tokens, loadedStore(gw, tokens), &recordingNotifier{})

	form := validForm()
	form.ID = "lst-1"
	form.Country = "Jamaica"
	form.Price = "6.75" // edited in the reference currency

	if err := uc.Execute(context.Background(), form); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gw.updateCalls != 1 || gw.createCalls != 0 {
		t.Fatalf("expected one update, got create=%d update=%d", gw.createCalls, gw.updateCalls)
	}
	if gw.lastSub.Price != 155 {
		t.Fatalf("expected the stored price back in JMD (155), got %v", gw.lastSub.Price)
	}
	if gw.lastSub.ID != "lst-1" {
		t.Fatalf("expected the listing id on the submission, got %q", gw.lastSub.ID)
	}
}

func TestExecuteSurfacesGatewayFailure(t *testing.T) {
	gw := &recordingGateway{err: errors.New("title already taken")}
	tokens := &stubTokens{token: "jwt-1"}
	notifier := &recordingNotifier{}
	uc := NewSaveListingUseCase(gw, tokens, loadedStore(gw, tokens), notifier)

	if err := uc.Execute(context.Background(), validForm()); err == nil {
		t.Fatal("expected the gateway error to propagate")
	}
	if len(notifier.errors) != 1 || notifier.errors[0] != "title already taken" {
		t.Fatalf("expected the gateway message as an error toast, got %v", notifier.errors)
	}
	if gw.userCalls != 0 || gw.publicCalls != 0 {
		t.Fatal("a failed save must not refresh the listings")
	}
}

func TestExecuteSurfacesTokenFailure(t *testing.T) {
	gw := &recordingGateway{}
	tokens := &stubTokens{err: errors.New("session expired")}
	notifier := &recordingNotifier{}
	uc := NewSaveListingUseCase(gw, tokens, loadedStore(gw, tokens), notifier)

	if err := uc.Execute(context.Background(), validForm()); err == nil {
		t.Fatal("expected the token error to propagate")
	}
	if gw.createCalls != 0 {
		t.Fatal("the gateway must not be called without a token")
	}
	if len(notifier.errors) != 1 {
		t.Fatalf("expected one error toast got %v", notifier.errors)
	}
}
