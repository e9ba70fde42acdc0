package services

import (
	"context"

	"github.com/voyago/travel_booking_app/internal/core/domain"
	"github.com/voyago/travel_booking_app/internal/dto"
)

// BookingSvcFacade orchestrates the booking lifecycle: validation, promo
// application, wallet debit/credit, reference generation and persistence as
// atomic units of work.
type BookingSvcFacade interface {
	// CreateBooking validates the request, debits the wallet when paying by
	// wallet, and persists the booking with a fresh unique reference. For
	// wallet payments the debit and the insert are one atomic unit.
	CreateBooking(ctx context.Context, userID string, req dto.CreateBookingRequest) (*domain.Booking, error)

	// CancelBooking transitions the booking to Cancelled and refunds its
	// total amount to the owner's wallet. Not idempotent: a repeat cancel
	// fails with apperrors.ErrAlreadyCancelled.
	CancelBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error)

	// GetBooking returns the booking when owned by userID.
	GetBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error)

	// ListBookings returns the user's bookings, newest first.
	ListBookings(ctx context.Context, userID string) ([]domain.Booking, error)
}
