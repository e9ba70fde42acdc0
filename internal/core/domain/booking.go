package domain

import (
	"encoding/json"
	"time"
)

// BookingType identifies the travel product category of a booking.
type BookingType string

const (
	BookingFlight  BookingType = "flight"
	BookingHotel   BookingType = "hotel"
	BookingTrain   BookingType = "train"
	BookingBus     BookingType = "bus"
	BookingCab     BookingType = "cab"
	BookingHoliday BookingType = "holiday"
)

// Valid reports whether t is a recognized booking type.
func (t BookingType) Valid() bool {
	switch t {
	case BookingFlight, BookingHotel, BookingTrain, BookingBus, BookingCab, BookingHoliday:
		return true
	}
	return false
}

// BookingStatus is the lifecycle state of a booking.
// The only legal transition is Confirmed -> Cancelled; Cancelled is terminal.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// PaymentMethod is the payment flag recorded on a booking. Wallet payments
// debit the user's wallet atomically with the booking insert; any other
// method is opaque to this system.
type PaymentMethod string

const (
	PaymentWallet PaymentMethod = "wallet"
	PaymentOther  PaymentMethod = "other"
)

// Valid reports whether m is a recognized payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentWallet || m == PaymentOther
}

// Booking is an append-only record of a purchased travel product.
// Details is an immutable snapshot of the purchased item copied at booking
// time, not a live reference to catalog data.
type Booking struct {
	BookingID      string          `json:"bookingID"` // internal, opaque (UUID)
	Reference      string          `json:"reference"` // human-readable, globally unique, type-prefixed
	UserID         string          `json:"userID"`
	Type           BookingType     `json:"type"`
	Details        json.RawMessage `json:"details"`
	TotalAmount    int64           `json:"totalAmount"`    // final amount charged, after discount
	DiscountAmount int64           `json:"discountAmount"` // >= 0
	PromoCode      string          `json:"promoCode,omitempty"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	Status         BookingStatus   `json:"status"`
	BookedAt       time.Time       `json:"bookedAt"`
	CancelledAt    *time.Time      `json:"cancelledAt,omitempty"` // set iff Status == StatusCancelled
}
