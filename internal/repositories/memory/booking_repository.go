package memory

import (
	"context"
	"sort"
	"time"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
)

type bookingRepository struct {
	store *Store
}

func newBookingRepository(store *Store) portsrepo.BookingRepositoryFacade {
	return &bookingRepository{store: store}
}

var _ portsrepo.BookingRepositoryFacade = (*bookingRepository)(nil)

func (r *bookingRepository) CreateBookingWithDebit(ctx context.Context, booking domain.Booking, debitAmount int64) error {
	s := r.store

	// Serialize against all other wallet and booking mutations for this user
	// so the balance check, the debit and the insert form one critical section.
	lock := s.userLock(booking.UserID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.references[booking.Reference]; taken {
		return apperrors.ErrDuplicate
	}
	if _, ok := s.users[booking.UserID]; !ok {
		return apperrors.ErrUserNotFound
	}

	if debitAmount > 0 {
		if _, err := debitLocked(s, booking.UserID, debitAmount, booking.Reference, "booking payment", booking.BookedAt); err != nil {
			return err
		}
	}

	b := booking
	s.bookings[b.BookingID] = &b
	s.order = append(s.order, b.BookingID)
	s.references[b.Reference] = struct{}{}
	return nil
}

func (r *bookingRepository) CancelBookingWithRefund(ctx context.Context, bookingID, userID string, cancelledAt time.Time) (*domain.Booking, error) {
	s := r.store

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[bookingID]
	if !ok || b.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	if b.Status == domain.StatusCancelled {
		return nil, apperrors.ErrAlreadyCancelled
	}

	if _, err := creditLocked(s, userID, b.TotalAmount, b.Reference, "booking refund", cancelledAt); err != nil {
		return nil, err
	}

	b.Status = domain.StatusCancelled
	t := cancelledAt
	b.CancelledAt = &t
	updated := *b
	return &updated, nil
}

func (r *bookingRepository) FindBookingByID(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[bookingID]
	if !ok || b.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	out := *b
	return &out, nil
}

func (r *bookingRepository) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bookings []domain.Booking
	for _, id := range s.order {
		if b := s.bookings[id]; b.UserID == userID {
			bookings = append(bookings, *b)
		}
	}
	// Stable sort keeps insertion order as the tie-break for equal timestamps.
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].BookedAt.After(bookings[j].BookedAt)
	})
	return bookings, nil
}
