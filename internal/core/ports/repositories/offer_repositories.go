package repositories

import (
	"context"

	"github.com/voyago/travel_booking_app/internal/core/domain"
)

// OfferRepositoryFacade reads discount offers. Offers are reference data;
// there are no write operations.
type OfferRepositoryFacade interface {
	// FindOfferByCode matches the code case-insensitively. Returns
	// apperrors.ErrNotFound when no such offer exists.
	FindOfferByCode(ctx context.Context, code string) (*domain.Offer, error)

	// ListOffers returns all offers.
	ListOffers(ctx context.Context) ([]domain.Offer, error)
}
