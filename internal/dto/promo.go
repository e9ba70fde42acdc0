package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/voyago/travel_booking_app/internal/core/domain"
)

// ValidatePromoRequest defines the data needed to validate a promo code.
type ValidatePromoRequest struct {
	Code     string             `json:"code" binding:"required"`
	Amount   int64              `json:"amount" binding:"required,gt=0"`
	Category domain.BookingType `json:"category" binding:"required"`
}

// OfferResponse defines the public view of a discount offer.
type OfferResponse struct {
	Code        string          `json:"code"`
	Category    string          `json:"category"`
	Type        domain.OfferType `json:"type"`
	Discount    decimal.Decimal `json:"discount"`
	MinAmount   int64           `json:"minAmount"`
	MaxDiscount int64           `json:"maxDiscount"`
	ValidUntil  time.Time       `json:"validUntil"`
	Description string          `json:"description,omitempty"`
}

// ToOfferResponse converts a domain.Offer to its response DTO.
func ToOfferResponse(o domain.Offer) OfferResponse {
	return OfferResponse{
		Code:        o.Code,
		Category:    o.Category,
		Type:        o.Type,
		Discount:    o.Discount,
		MinAmount:   o.MinAmount,
		MaxDiscount: o.MaxDiscount,
		ValidUntil:  o.ValidUntil,
		Description: o.Description,
	}
}

// ValidatePromoResponse defines the result of a successful promo validation.
type ValidatePromoResponse struct {
	Offer          OfferResponse `json:"offer"`
	DiscountAmount int64         `json:"discountAmount"`
	FinalAmount    int64         `json:"finalAmount"`
}

// ToValidatePromoResponse converts a domain.PromoResult to its response DTO.
func ToValidatePromoResponse(r *domain.PromoResult) ValidatePromoResponse {
	return ValidatePromoResponse{
		Offer:          ToOfferResponse(r.Offer),
		DiscountAmount: r.DiscountAmount,
		FinalAmount:    r.FinalAmount,
	}
}

// ListOffersResponse wraps the active offers listing.
type ListOffersResponse struct {
	Offers []OfferResponse `json:"offers"`
}

// ToListOffersResponse converts domain offers to the list response DTO.
func ToListOffersResponse(offers []domain.Offer) ListOffersResponse {
	out := make([]OfferResponse, len(offers))
	for i, o := range offers {
		out[i] = ToOfferResponse(o)
	}
	return ListOffersResponse{Offers: out}
}
