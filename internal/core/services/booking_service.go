package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/voyago/travel_booking_app/internal/core/ports/services"
	"github.com/voyago/travel_booking_app/internal/dto"
	"github.com/voyago/travel_booking_app/internal/middleware"
	"github.com/voyago/travel_booking_app/internal/utils"
)

// referenceRetries bounds the generate-and-retry loop on reference
// collisions. With an 8-character random suffix collisions are already rare;
// exhausting the budget means something is seriously wrong with the store.
const referenceRetries = 5

// ErrReferenceExhausted is returned when a unique booking reference could
// not be generated within the retry budget.
var ErrReferenceExhausted = errors.New("could not generate a unique booking reference")

// BookingEventPublisher publishes booking lifecycle events to downstream
// consumers. Publishing is best-effort: a failure never rolls back the
// committed booking operation.
type BookingEventPublisher interface {
	PublishBookingEvent(ctx context.Context, eventType string, booking *domain.Booking) error
}

// bookingService orchestrates the booking lifecycle.
type bookingService struct {
	bookingRepo portsrepo.BookingRepositoryFacade
	promoSvc    portssvc.PromoSvcFacade
	publisher   BookingEventPublisher // optional
	now         func() time.Time
}

// BookingServiceOption configures optional collaborators.
type BookingServiceOption func(*bookingService)

// WithEventPublisher attaches a booking event publisher.
func WithEventPublisher(p BookingEventPublisher) BookingServiceOption {
	return func(s *bookingService) { s.publisher = p }
}

// NewBookingService creates a new BookingService.
func NewBookingService(bookingRepo portsrepo.BookingRepositoryFacade, promoSvc portssvc.PromoSvcFacade, opts ...BookingServiceOption) portssvc.BookingSvcFacade {
	s := &bookingService{
		bookingRepo: bookingRepo,
		promoSvc:    promoSvc,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

// CreateBooking validates the request, applies the promo code, debits the
// wallet when paying by wallet, and persists the booking. Validation, promo
// checking and reference generation all run before the repository's critical
// section; only the debit plus insert pair executes inside it. For wallet
// payments the booking exists if and only if the debit succeeded.
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req dto.CreateBookingRequest) (*domain.Booking, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown booking type %q", apperrors.ErrValidation, req.Type)
	}
	if !req.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}
	if req.TotalAmount <= 0 {
		return nil, fmt.Errorf("%w: total amount must be positive", apperrors.ErrValidation)
	}
	if req.DiscountAmount < 0 {
		return nil, fmt.Errorf("%w: discount amount cannot be negative", apperrors.ErrValidation)
	}
	if len(req.Details) == 0 {
		return nil, fmt.Errorf("%w: booking details are required", apperrors.ErrValidation)
	}

	// A claimed discount must be backed by a valid promo code and must match
	// what the code yields for the gross amount.
	if req.PromoCode != "" {
		gross := req.TotalAmount + req.DiscountAmount
		result, err := s.promoSvc.Validate(ctx, req.PromoCode, gross, req.Type)
		if err != nil {
			return nil, err
		}
		if result.DiscountAmount != req.DiscountAmount {
			return nil, fmt.Errorf("%w: discount amount %d does not match promo code %s (expected %d)",
				apperrors.ErrValidation, req.DiscountAmount, req.PromoCode, result.DiscountAmount)
		}
	} else if req.DiscountAmount != 0 {
		return nil, fmt.Errorf("%w: discount amount requires a promo code", apperrors.ErrValidation)
	}

	// Snapshot of the purchased item; the booking never references live
	// catalog data.
	details := make(json.RawMessage, len(req.Details))
	copy(details, req.Details)

	debitAmount := int64(0)
	if req.PaymentMethod == domain.PaymentWallet {
		debitAmount = req.TotalAmount
	}

	now := s.now().UTC()
	booking := domain.Booking{
		BookingID:      uuid.NewString(),
		UserID:         userID,
		Type:           req.Type,
		Details:        details,
		TotalAmount:    req.TotalAmount,
		DiscountAmount: req.DiscountAmount,
		PromoCode:      req.PromoCode,
		PaymentMethod:  req.PaymentMethod,
		Status:         domain.StatusConfirmed,
		BookedAt:       now,
	}

	for attempt := 0; attempt < referenceRetries; attempt++ {
		ref, err := utils.NewBookingReference(req.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to generate booking reference: %w", err)
		}
		booking.Reference = ref

		err = s.bookingRepo.CreateBookingWithDebit(ctx, booking, debitAmount)
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Booking reference collision, retrying", slog.String("reference", ref))
			continue
		}
		if err != nil {
			return nil, err
		}

		logger.Info("Booking created",
			slog.String("booking_id", booking.BookingID),
			slog.String("reference", booking.Reference),
			slog.String("type", string(booking.Type)),
			slog.Int64("total_amount", booking.TotalAmount),
		)
		s.publish(ctx, "booking_confirmed", &booking)
		return &booking, nil
	}

	return nil, ErrReferenceExhausted
}

// CancelBooking transitions the booking to Cancelled and refunds its total
// amount to the owner's wallet, regardless of the original payment method.
// Not idempotent: cancelling twice fails with ErrAlreadyCancelled and the
// wallet is credited exactly once.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelBookingWithRefund(ctx, bookingID, userID, s.now().UTC())
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Booking cancelled",
		slog.String("booking_id", cancelled.BookingID),
		slog.String("reference", cancelled.Reference),
		slog.Int64("refund_amount", cancelled.TotalAmount),
	)
	s.publish(ctx, "booking_cancelled", cancelled)
	return cancelled, nil
}

// GetBooking returns the booking when owned by userID.
func (s *bookingService) GetBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	return s.bookingRepo.FindBookingByID(ctx, bookingID, userID)
}

// ListBookings returns the user's bookings, newest first.
func (s *bookingService) ListBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookingRepo.ListBookingsByUser(ctx, userID)
}

// publish emits a lifecycle event after the operation has committed.
func (s *bookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishBookingEvent(ctx, eventType, booking); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to publish booking event",
			slog.String("event_type", eventType),
			slog.String("booking_id", booking.BookingID),
			slog.String("error", err.Error()),
		)
	}
}
