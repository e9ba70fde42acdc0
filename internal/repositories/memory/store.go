// Package memory provides in-memory repository implementations backed by a
// shared store with per-user mutual exclusion. The locking discipline matches
// the pgsql implementation's row locks: all wallet and booking mutations for
// a user serialize on that user's lock, while reads and other users' writes
// proceed concurrently.
package memory

import (
	"strings"
	"sync"

	"github.com/voyago/travel_booking_app/internal/core/domain"
)

type userRecord struct {
	user         domain.User
	passwordHash string
}

// Store is the shared backing state for all memory repositories.
type Store struct {
	mu sync.RWMutex

	users      map[string]*userRecord
	bookings   map[string]*domain.Booking
	order      []string // booking IDs in insertion order
	references map[string]struct{}
	walletTxns map[string][]domain.WalletTransaction
	offers     map[string]domain.Offer // keyed by upper-cased code

	lockMu    sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:      make(map[string]*userRecord),
		bookings:   make(map[string]*domain.Booking),
		references: make(map[string]struct{}),
		walletTxns: make(map[string][]domain.WalletTransaction),
		offers:     make(map[string]domain.Offer),
		userLocks:  make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex serializing mutations for userID, creating it
// on first use.
func (s *Store) userLock(userID string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	return l
}

// SeedOffers loads offers into the store. Intended for tests and local runs;
// offers are reference data and are never mutated afterwards.
func (s *Store) SeedOffers(offers ...domain.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range offers {
		s.offers[strings.ToUpper(o.Code)] = o
	}
}
