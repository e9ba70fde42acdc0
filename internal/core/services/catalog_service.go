package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/catalog"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portssvc "github.com/voyago/travel_booking_app/internal/core/ports/services"
	"github.com/voyago/travel_booking_app/internal/middleware"
)

// ProductCache caches catalog listings. Misses and cache failures are
// absorbed: the service always has the static catalog to fall back on.
type ProductCache interface {
	GetProducts(ctx context.Context, bookingType domain.BookingType) ([]domain.Product, error)
	SetProducts(ctx context.Context, bookingType domain.BookingType, products []domain.Product) error
}

type catalogService struct {
	cache ProductCache // optional
}

// CatalogServiceOption configures optional collaborators.
type CatalogServiceOption func(*catalogService)

// WithProductCache attaches a product cache in front of the static catalog.
func WithProductCache(c ProductCache) CatalogServiceOption {
	return func(s *catalogService) { s.cache = c }
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(opts ...CatalogServiceOption) portssvc.CatalogSvcFacade {
	s := &catalogService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

// ListProducts returns the catalog entries for the given booking type.
func (s *catalogService) ListProducts(ctx context.Context, bookingType domain.BookingType) ([]domain.Product, error) {
	if !bookingType.Valid() {
		return nil, fmt.Errorf("%w: unknown booking type %q", apperrors.ErrValidation, bookingType)
	}

	logger := middleware.GetLoggerFromCtx(ctx)

	if s.cache != nil {
		products, err := s.cache.GetProducts(ctx, bookingType)
		if err == nil && products != nil {
			return products, nil
		}
		if err != nil {
			logger.Warn("Catalog cache read failed", slog.String("error", err.Error()))
		}
	}

	products := catalog.ProductsByType(bookingType)

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, bookingType, products); err != nil {
			logger.Warn("Catalog cache write failed", slog.String("error", err.Error()))
		}
	}

	return products, nil
}
