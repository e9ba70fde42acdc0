package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(dbPool),
		WalletRepo:  newPgxWalletRepository(dbPool),
		BookingRepo: newPgxBookingRepository(dbPool),
		OfferRepo:   newPgxOfferRepository(dbPool),
	}
}
