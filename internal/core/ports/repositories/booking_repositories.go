package repositories

import (
	"context"
	"time"

	"github.com/voyago/travel_booking_app/internal/core/domain"
)

// BookingRepositoryFacade owns the append-only booking collection and the
// transactional coupling between a booking write and the wallet mutation it
// implies. Bookings are never deleted.
type BookingRepositoryFacade interface {
	// CreateBookingWithDebit persists the booking and, when debitAmount > 0,
	// debits the user's wallet in the same atomic unit: the booking exists
	// if and only if the debit succeeded. Nothing is written on failure.
	// Fails with apperrors.ErrInsufficientFunds, apperrors.ErrUserNotFound,
	// or apperrors.ErrDuplicate (reference collision).
	CreateBookingWithDebit(ctx context.Context, booking domain.Booking, debitAmount int64) error

	// CancelBookingWithRefund transitions the booking Confirmed -> Cancelled,
	// sets cancelledAt, and credits the owner's wallet with the booking's
	// total amount, all in one atomic unit. The status guard guarantees the
	// credit is issued at most once per booking.
	// Fails with apperrors.ErrNotFound (unknown or not owned by userID) or
	// apperrors.ErrAlreadyCancelled.
	CancelBookingWithRefund(ctx context.Context, bookingID, userID string, cancelledAt time.Time) (*domain.Booking, error)

	// FindBookingByID returns the booking when owned by userID, else
	// apperrors.ErrNotFound. Ownership failures are indistinguishable from
	// missing bookings.
	FindBookingByID(ctx context.Context, bookingID, userID string) (*domain.Booking, error)

	// ListBookingsByUser returns the user's bookings ordered by bookedAt
	// descending, with insertion order as the stable tie-break.
	ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error)
}
