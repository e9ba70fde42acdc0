package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
	"github.com/voyago/travel_booking_app/internal/models"
	"github.com/voyago/travel_booking_app/internal/utils/mapping"
)

// uniqueViolation is the PostgreSQL error code for unique constraint failures.
const uniqueViolation = "23505"

type PgxBookingRepository struct {
	BaseRepository
}

// newPgxBookingRepository creates a new repository for booking records.
func newPgxBookingRepository(pool *pgxpool.Pool) portsrepo.BookingRepositoryFacade {
	return &PgxBookingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BookingRepositoryFacade = (*PgxBookingRepository)(nil)

const bookingColumns = `booking_id, reference, user_id, booking_type, details, total_amount, discount_amount, promo_code, payment_method, status, booked_at, cancelled_at`

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var m models.Booking
	err := row.Scan(
		&m.BookingID,
		&m.Reference,
		&m.UserID,
		&m.BookingType,
		&m.Details,
		&m.TotalAmount,
		&m.DiscountAmount,
		&m.PromoCode,
		&m.PaymentMethod,
		&m.Status,
		&m.BookedAt,
		&m.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateBookingWithDebit inserts the booking and, when debitAmount > 0,
// debits the owner's wallet inside the same database transaction. The user
// row lock taken by the debit serializes concurrent wallet-funded creates
// for the same user, so the balance check and the insert form one critical
// section.
func (r *PgxBookingRepository) CreateBookingWithDebit(ctx context.Context, booking domain.Booking, debitAmount int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if debitAmount > 0 {
		if _, err := debitWalletTx(ctx, tx, booking.UserID, debitAmount, booking.Reference, "booking payment", booking.BookedAt); err != nil {
			return err
		}
	}

	m := mapping.ToModelBooking(booking)
	_, err = tx.Exec(ctx,
		`INSERT INTO bookings (booking_id, reference, user_id, booking_type, details, total_amount, discount_amount, promo_code, payment_method, status, booked_at, cancelled_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		m.BookingID, m.Reference, m.UserID, m.BookingType, m.Details, m.TotalAmount, m.DiscountAmount, m.PromoCode, m.PaymentMethod, m.Status, m.BookedAt, m.CancelledAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert booking "+m.BookingID, err)
	}

	return r.Commit(ctx, tx)
}

// CancelBookingWithRefund flips the booking to Cancelled and credits the
// wallet in one transaction. The booking row lock plus the status guard make
// the refund exactly-once; a concurrent or repeated cancel observes the
// CANCELLED status and fails.
func (r *PgxBookingRepository) CancelBookingWithRefund(ctx context.Context, bookingID, userID string, cancelledAt time.Time) (*domain.Booking, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m, err := scanBooking(tx.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE booking_id = $1 AND user_id = $2 FOR UPDATE;`,
		bookingID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock booking "+bookingID, err)
	}

	if domain.BookingStatus(m.Status) == domain.StatusCancelled {
		return nil, apperrors.ErrAlreadyCancelled
	}

	_, err = tx.Exec(ctx,
		`UPDATE bookings SET status = $1, cancelled_at = $2 WHERE booking_id = $3;`,
		string(domain.StatusCancelled), cancelledAt, bookingID,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to cancel booking "+bookingID, err)
	}

	if _, err := creditWalletTx(ctx, tx, userID, m.TotalAmount, m.Reference, "booking refund", cancelledAt); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	m.Status = string(domain.StatusCancelled)
	m.CancelledAt = &cancelledAt
	b := mapping.ToDomainBooking(*m)
	return &b, nil
}

// FindBookingByID returns the booking when owned by userID. Missing and
// not-owned bookings are both reported as ErrNotFound.
func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	m, err := scanBooking(r.Pool.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE booking_id = $1 AND user_id = $2;`,
		bookingID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find booking "+bookingID, err)
	}
	b := mapping.ToDomainBooking(*m)
	return &b, nil
}

// ListBookingsByUser returns the user's bookings ordered by booked_at
// descending; the seq column breaks timestamp ties in insertion order.
func (r *PgxBookingRepository) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY booked_at DESC, seq ASC;`,
		userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bookings for user "+userID, err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		m, err := scanBooking(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan booking", err)
		}
		bookings = append(bookings, mapping.ToDomainBooking(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bookings", err)
	}
	return bookings, nil
}
