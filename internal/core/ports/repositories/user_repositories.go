package repositories

import (
	"context"

	"github.com/voyago/travel_booking_app/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	// SaveUser inserts a new user. Returns apperrors.ErrDuplicate if the
	// email is already registered.
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error

	// FindUserByID returns the user or apperrors.ErrUserNotFound.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail returns the user and its password hash, or
	// apperrors.ErrUserNotFound. Used only by the authentication adapter.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, string, error)
}
