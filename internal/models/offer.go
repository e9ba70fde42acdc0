package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer is the database representation of a discount offer.
type Offer struct {
	Code        string          `db:"code"`
	Category    string          `db:"category"`
	OfferType   string          `db:"offer_type"`
	Discount    decimal.Decimal `db:"discount"`
	MinAmount   int64           `db:"min_amount"`
	MaxDiscount int64           `db:"max_discount"`
	ValidUntil  time.Time       `db:"valid_until"`
	Description string          `db:"description"`
}
