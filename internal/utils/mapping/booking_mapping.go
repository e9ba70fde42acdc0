package mapping

import (
	"encoding/json"

	"github.com/voyago/travel_booking_app/internal/core/domain"
	"github.com/voyago/travel_booking_app/internal/models"
)

// ToModelBooking converts a domain.Booking to its database model.
func ToModelBooking(d domain.Booking) models.Booking {
	return models.Booking{
		BookingID:      d.BookingID,
		Reference:      d.Reference,
		UserID:         d.UserID,
		BookingType:    string(d.Type),
		Details:        []byte(d.Details),
		TotalAmount:    d.TotalAmount,
		DiscountAmount: d.DiscountAmount,
		PromoCode:      d.PromoCode,
		PaymentMethod:  string(d.PaymentMethod),
		Status:         string(d.Status),
		BookedAt:       d.BookedAt,
		CancelledAt:    d.CancelledAt,
	}
}

// ToDomainBooking converts a database booking model to its domain form.
func ToDomainBooking(m models.Booking) domain.Booking {
	return domain.Booking{
		BookingID:      m.BookingID,
		Reference:      m.Reference,
		UserID:         m.UserID,
		Type:           domain.BookingType(m.BookingType),
		Details:        json.RawMessage(m.Details),
		TotalAmount:    m.TotalAmount,
		DiscountAmount: m.DiscountAmount,
		PromoCode:      m.PromoCode,
		PaymentMethod:  domain.PaymentMethod(m.PaymentMethod),
		Status:         domain.BookingStatus(m.Status),
		BookedAt:       m.BookedAt,
		CancelledAt:    m.CancelledAt,
	}
}
