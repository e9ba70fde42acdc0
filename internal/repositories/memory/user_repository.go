package memory

import (
	"context"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
)

type userRepository struct {
	store *Store
}

func newUserRepository(store *Store) portsrepo.UserRepositoryFacade {
	return &userRepository{store: store}
}

var _ portsrepo.UserRepositoryFacade = (*userRepository)(nil)

func (r *userRepository) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.UserID]; exists {
		return apperrors.ErrDuplicate
	}
	for _, rec := range s.users {
		if rec.user.Email == user.Email {
			return apperrors.ErrDuplicate
		}
	}
	u := user
	s.users[user.UserID] = &userRecord{user: u, passwordHash: passwordHash}
	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	u := rec.user
	return &u, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.users {
		if rec.user.Email == email {
			u := rec.user
			return &u, rec.passwordHash, nil
		}
	}
	return nil, "", apperrors.ErrUserNotFound
}
