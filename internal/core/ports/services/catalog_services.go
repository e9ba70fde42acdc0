package services

import (
	"context"

	"github.com/voyago/travel_booking_app/internal/core/domain"
)

// CatalogSvcFacade lists travel products. Read-only reference data; no
// availability is checked or decremented here.
type CatalogSvcFacade interface {
	ListProducts(ctx context.Context, bookingType domain.BookingType) ([]domain.Product, error)
}
