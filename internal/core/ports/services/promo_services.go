package services

import (
	"context"

	"github.com/voyago/travel_booking_app/internal/core/domain"
)

// PromoSvcFacade validates discount codes and computes discounts. Stateless.
type PromoSvcFacade interface {
	// Validate checks code against amount and category and computes the
	// discount. Fails with apperrors.ErrInvalidOrExpiredCode,
	// apperrors.ErrCategoryMismatch or apperrors.ErrBelowMinimumAmount.
	Validate(ctx context.Context, code string, amount int64, category domain.BookingType) (*domain.PromoResult, error)

	// ListActiveOffers returns offers that have not yet expired.
	ListActiveOffers(ctx context.Context) ([]domain.Offer, error)
}
