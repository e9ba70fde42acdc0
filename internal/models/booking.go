package models

import "time"

// Booking is the database representation of a booking record.
// Seq is a monotonically increasing insertion counter used as the stable
// tie-break when listing by booked_at.
type Booking struct {
	BookingID      string     `db:"booking_id"`
	Reference      string     `db:"reference"`
	UserID         string     `db:"user_id"`
	BookingType    string     `db:"booking_type"`
	Details        []byte     `db:"details"`
	TotalAmount    int64      `db:"total_amount"`
	DiscountAmount int64      `db:"discount_amount"`
	PromoCode      string     `db:"promo_code"`
	PaymentMethod  string     `db:"payment_method"`
	Status         string     `db:"status"`
	BookedAt       time.Time  `db:"booked_at"`
	CancelledAt    *time.Time `db:"cancelled_at"`
	Seq            int64      `db:"seq"`
}
