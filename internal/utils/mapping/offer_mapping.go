package mapping

import (
	"github.com/voyago/travel_booking_app/internal/core/domain"
	"github.com/voyago/travel_booking_app/internal/models"
)

// ToDomainOffer converts a database offer model to its domain form.
func ToDomainOffer(m models.Offer) domain.Offer {
	return domain.Offer{
		Code:        m.Code,
		Category:    m.Category,
		Type:        domain.OfferType(m.OfferType),
		Discount:    m.Discount,
		MinAmount:   m.MinAmount,
		MaxDiscount: m.MaxDiscount,
		ValidUntil:  m.ValidUntil,
		Description: m.Description,
	}
}

// ToDomainOffers converts a slice of offer models.
func ToDomainOffers(ms []models.Offer) []domain.Offer {
	out := make([]domain.Offer, len(ms))
	for i, m := range ms {
		out[i] = ToDomainOffer(m)
	}
	return out
}
