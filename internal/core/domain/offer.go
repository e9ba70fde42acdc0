package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferType distinguishes flat-amount discounts from percentage discounts.
type OfferType string

const (
	OfferFlat       OfferType = "FLAT"
	OfferPercentage OfferType = "PERCENTAGE"
)

// OfferCategoryAll marks an offer applicable to every booking type.
const OfferCategoryAll = "all"

// Offer is a discount rule applied at booking time. Offers are read-only
// reference data; this system never mutates them.
type Offer struct {
	Code        string          `json:"code"`     // unique, matched case-insensitively
	Category    string          `json:"category"` // a BookingType value or OfferCategoryAll
	Type        OfferType       `json:"type"`
	Discount    decimal.Decimal `json:"discount"`    // flat amount or percentage (may be fractional)
	MinAmount   int64           `json:"minAmount"`   // inclusive lower bound on the order amount
	MaxDiscount int64           `json:"maxDiscount"` // cap on a percentage discount
	ValidUntil  time.Time       `json:"validUntil"`  // inclusive date boundary
	Description string          `json:"description"`
}

// PromoResult is the outcome of validating a promo code against an amount.
type PromoResult struct {
	Offer          Offer `json:"offer"`
	DiscountAmount int64 `json:"discountAmount"`
	FinalAmount    int64 `json:"finalAmount"`
}
