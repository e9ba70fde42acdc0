package dto

import "github.com/voyago/travel_booking_app/internal/core/domain"

// ListProductsResponse wraps a catalog listing.
type ListProductsResponse struct {
	Products []domain.Product `json:"products"`
}
