package mapping

import (
	"github.com/voyago/travel_booking_app/internal/core/domain"
	"github.com/voyago/travel_booking_app/internal/models"
)

// ToDomainUser converts a database user model to its domain form.
// The password hash never leaves the repository layer.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:        m.UserID,
		Name:          m.Name,
		Email:         m.Email,
		WalletBalance: m.WalletBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
