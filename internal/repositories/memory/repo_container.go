package memory

import (
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all memory repositories over a shared store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newUserRepository(store),
		WalletRepo:  newWalletRepository(store),
		BookingRepo: newBookingRepository(store),
		OfferRepo:   newOfferRepository(store),
	}
}
