package usecase

import (
	"context"
	"testing"
)

func TestRefreshListingsFetchesBothSets(t *testing.T) {
	gw := &recordingGateway{}
	tokens := &stubTokens{token: "jwt-1"}
	uc := NewRefreshListingsUseCase(loadedStore(gw, tokens))

	uc.Execute(context.Background())

	if gw.userCalls != 1 || gw.publicCalls != 1 {
		t.Fatalf("expected one fetch of each set, got user=%d public=%d", gw.userCalls, gw.publicCalls)
	}
}
