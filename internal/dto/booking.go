package dto

import (
	"encoding/json"
	"time"

	"github.com/voyago/travel_booking_app/internal/core/domain"
)

// CreateBookingRequest defines the data needed to create a booking.
// Details is the snapshot of the purchased item, copied verbatim into the
// booking record. DiscountAmount and PromoCode travel together: when a promo
// code is supplied the service recomputes the discount and rejects mismatches.
type CreateBookingRequest struct {
	Type           domain.BookingType   `json:"type" binding:"required"`
	Details        json.RawMessage      `json:"details" binding:"required"`
	TotalAmount    int64                `json:"totalAmount" binding:"required,gt=0"`
	DiscountAmount int64                `json:"discountAmount" binding:"gte=0"`
	PromoCode      string               `json:"promoCode"`
	PaymentMethod  domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=wallet other"`
}

// BookingResponse defines the data returned for a booking.
type BookingResponse struct {
	BookingID      string               `json:"bookingID"`
	Reference      string               `json:"reference"`
	UserID         string               `json:"userID"`
	Type           domain.BookingType   `json:"type"`
	Details        json.RawMessage      `json:"details"`
	TotalAmount    int64                `json:"totalAmount"`
	DiscountAmount int64                `json:"discountAmount"`
	PromoCode      string               `json:"promoCode,omitempty"`
	PaymentMethod  domain.PaymentMethod `json:"paymentMethod"`
	Status         domain.BookingStatus `json:"status"`
	BookedAt       time.Time            `json:"bookedAt"`
	CancelledAt    *time.Time           `json:"cancelledAt,omitempty"`
}

// ToBookingResponse converts a domain.Booking to its response DTO.
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:      b.BookingID,
		Reference:      b.Reference,
		UserID:         b.UserID,
		Type:           b.Type,
		Details:        b.Details,
		TotalAmount:    b.TotalAmount,
		DiscountAmount: b.DiscountAmount,
		PromoCode:      b.PromoCode,
		PaymentMethod:  b.PaymentMethod,
		Status:         b.Status,
		BookedAt:       b.BookedAt,
		CancelledAt:    b.CancelledAt,
	}
}

// ListBookingsResponse wraps a list of bookings.
type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ToListBookingsResponse converts domain bookings to the list response DTO.
func ToListBookingsResponse(bookings []domain.Booking) ListBookingsResponse {
	out := make([]BookingResponse, len(bookings))
	for i := range bookings {
		out[i] = ToBookingResponse(&bookings[i])
	}
	return ListBookingsResponse{Bookings: out}
}
