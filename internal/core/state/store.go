// Package state holds the shared listing state of the client: the public
// catalogue, the user's own listings and the server-computed balance. It is
// the single source of truth for listing data in the UI; views read
// snapshots out of it and never keep private copies beyond transient edit
// buffers.
package state

import (
	"context"
	"sync"

	"caribcart-client/internal/contextkeys"
	"caribcart-client/internal/core/domain"
	"caribcart-client/internal/core/port"

	"golang.org/x/sync/singleflight"
)

// Store is the listing state container. Each fetch fully replaces the state
// it owns; there is no partial merge. Concurrent triggers of the same fetch
// are collapsed into a single upstream request.
type Store struct {
	gateway port.MarketplaceGatewayPort
	tokens  port.TokenProviderPort
	logger  port.LoggerPort

	group singleflight.Group

	mu           sync.RWMutex
	listings     []domain.Listing
	userListings []domain.Listing
	balance      domain.Balance
}

func NewStore(gateway port.MarketplaceGatewayPort, tokens port.TokenProviderPort, logger port.LoggerPort) *Store {
	if logger == nil {
		logger = contextkeys.LoggerFromContext(context.Background())
	}
	return &Store{
		gateway: gateway,
		tokens:  tokens,
		logger:  logger.WithFields(port.Fields{"component": "ListingStore"}),
	}
}

// Listings returns a snapshot of the public catalogue.
func (s *Store) Listings() []domain.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyListings(s.listings)
}

// UserListings returns a snapshot of the user's own listings.
func (s *Store) UserListings() []domain.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyListings(s.userListings)
}

// UserListing looks up one of the user's listings by ID.
func (s *Store) UserListing(id string) (domain.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.userListings {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Listing{}, false
}

// Balance returns the last balance the gateway reported.
func (s *Store) Balance() domain.Balance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balance
}

// SetListings overwrites the public catalogue without a round trip.
func (s *Store) SetListings(listings []domain.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = copyListings(listings)
}

// FetchPublicListings refreshes the public catalogue. On success the
// catalogue is replaced with the response; on any failure it is reset to
// empty. Failures are logged, never surfaced; the catalogue degrades
// silently.
func (s *Store) FetchPublicListings(ctx context.Context) {
	s.group.Do("public", func() (interface{}, error) {
		listings, err := s.gateway.FetchPublicListings(ctx)
		if err != nil {
			s.logger.Error("Public listing fetch failed, resetting catalogue", err, nil)
			listings = nil
		}

		s.mu.Lock()
		s.listings = copyListings(listings)
		s.mu.Unlock()
		return nil, nil
	})
}

// FetchUserListings refreshes the user's listings and balance with a fresh
// bearer token. On success both are replaced from the response. On failure
// the listings are reset to empty while the balance keeps its previous
// value; the last successfully fetched totals stay on display until a fetch
// succeeds again.
func (s *Store) FetchUserListings(ctx context.Context) {
	s.group.Do("user", func() (interface{}, error) {
		token, err := s.tokens.Token(ctx)
		if err != nil {
			s.logger.Error("Token acquisition failed, resetting user listings", err, nil)
			s.resetUserListings()
			return nil, nil
		}

		listings, balance, err := s.gateway.FetchUserListings(ctx, token)
		if err != nil {
			s.logger.Error("User listing fetch failed, resetting user listings", err, nil)
			s.resetUserListings()
			return nil, nil
		}

		s.mu.Lock()
		s.userListings = copyListings(listings)
		s.balance = balance
		s.mu.Unlock()
		return nil, nil
	})
}

func (s *Store) resetUserListings() {
	s.mu.Lock()
	s.userListings = nil
	s.mu.Unlock()
}

func copyListings(in []domain.Listing) []domain.Listing {
	if in == nil {
		return []domain.Listing{}
	}
	out := make([]domain.Listing, len(in))
	copy(out, in)
	return out
}
