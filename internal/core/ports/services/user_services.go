package services

import (
	"context"

	"github.com/voyago/travel_booking_app/internal/core/domain"
	"github.com/voyago/travel_booking_app/internal/dto"
)

// UserSvcFacade is the thin identity adapter. The core treats authentication
// as an external concern; this facade only registers users and verifies
// credentials so the API server can mint tokens.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
