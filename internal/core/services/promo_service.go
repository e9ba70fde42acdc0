package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/voyago/travel_booking_app/internal/core/ports/services"
	"github.com/voyago/travel_booking_app/internal/middleware"
)

// promoService validates promo codes against offers. It holds no mutable
// state; offers are read-only reference data.
type promoService struct {
	offerRepo portsrepo.OfferRepositoryFacade
	now       func() time.Time
}

// NewPromoService creates a new PromoService.
func NewPromoService(offerRepo portsrepo.OfferRepositoryFacade) portssvc.PromoSvcFacade {
	return &promoService{offerRepo: offerRepo, now: time.Now}
}

var _ portssvc.PromoSvcFacade = (*promoService)(nil)

// offerExpired reports whether the offer's validity date has passed. The
// boundary is inclusive: the offer stays valid through the whole of its
// validUntil calendar day (UTC).
func offerExpired(offer *domain.Offer, now time.Time) bool {
	y, m, d := offer.ValidUntil.UTC().Date()
	endOfDay := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	return now.UTC().After(endOfDay)
}

// computeDiscount applies the offer to the amount. Percentage discounts are
// capped at maxDiscount and always rounded down, so the final amount is
// never understated beyond the cap.
func computeDiscount(offer *domain.Offer, amount int64) int64 {
	switch offer.Type {
	case domain.OfferPercentage:
		raw := decimal.NewFromInt(amount).Mul(offer.Discount).Div(decimal.NewFromInt(100))
		capped := decimal.Min(raw, decimal.NewFromInt(offer.MaxDiscount))
		return capped.Floor().IntPart()
	default: // domain.OfferFlat
		return offer.Discount.Floor().IntPart()
	}
}

// Validate checks the code against the amount and category and computes the
// discount and final amount.
func (s *promoService) Validate(ctx context.Context, code string, amount int64, category domain.BookingType) (*domain.PromoResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if code == "" {
		return nil, fmt.Errorf("%w: promo code is required", apperrors.ErrValidation)
	}

	offer, err := s.offerRepo.FindOfferByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidOrExpiredCode
		}
		return nil, fmt.Errorf("failed to look up offer %s: %w", code, err)
	}

	if offerExpired(offer, s.now()) {
		return nil, apperrors.ErrInvalidOrExpiredCode
	}

	if offer.Category != domain.OfferCategoryAll && !strings.EqualFold(offer.Category, string(category)) {
		return nil, fmt.Errorf("%w: offer %s applies to %s", apperrors.ErrCategoryMismatch, offer.Code, offer.Category)
	}

	if amount < offer.MinAmount {
		return nil, fmt.Errorf("%w: minimum order amount is %d", apperrors.ErrBelowMinimumAmount, offer.MinAmount)
	}

	discount := computeDiscount(offer, amount)
	result := &domain.PromoResult{
		Offer:          *offer,
		DiscountAmount: discount,
		FinalAmount:    amount - discount,
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Promo code validated",
		slog.String("code", offer.Code),
		slog.Int64("amount", amount),
		slog.Int64("discount", discount),
	)
	return result, nil
}

// ListActiveOffers returns offers that have not yet expired.
func (s *promoService) ListActiveOffers(ctx context.Context) ([]domain.Offer, error) {
	offers, err := s.offerRepo.ListOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	now := s.now()
	active := make([]domain.Offer, 0, len(offers))
	for _, o := range offers {
		if !offerExpired(&o, now) {
			active = append(active, o)
		}
	}
	return active, nil
}
