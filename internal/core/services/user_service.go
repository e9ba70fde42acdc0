package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/voyago/travel_booking_app/internal/core/ports/services"
	"github.com/voyago/travel_booking_app/internal/dto"
	"github.com/voyago/travel_booking_app/internal/middleware"
	"github.com/voyago/travel_booking_app/internal/utils"
)

// ErrInvalidCredentials is returned by Authenticate for a bad email/password
// pair. Deliberately opaque: callers cannot tell an unknown email from a
// wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new traveller with a zero wallet balance.
func (s *userService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:        uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		WalletBalance: 0,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user, hash); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		return nil, err
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// Authenticate verifies the email/password pair and returns the user.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, hash, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, hash) {
		return nil, ErrInvalidCredentials
	}

	middleware.GetLoggerFromCtx(ctx).Info("User authenticated", slog.String("user_id", user.UserID))
	return user, nil
}

// GetUserByID returns the user's profile including the current wallet balance.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
