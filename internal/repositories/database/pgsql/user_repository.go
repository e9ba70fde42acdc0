package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
	"github.com/voyago/travel_booking_app/internal/models"
	"github.com/voyago/travel_booking_app/internal/utils/mapping"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// SaveUser inserts a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO users (user_id, name, email, password_hash, wallet_balance, created_at, last_updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		user.UserID, user.Name, user.Email, passwordHash, user.WalletBalance, user.CreatedAt, user.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert user "+user.UserID, err)
	}
	return nil
}

// FindUserByID retrieves a user by ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var m models.User
	err := r.Pool.QueryRow(ctx,
		`SELECT user_id, name, email, password_hash, wallet_balance, created_at, last_updated_at
		 FROM users WHERE user_id = $1;`, userID).
		Scan(&m.UserID, &m.Name, &m.Email, &m.PasswordHash, &m.WalletBalance, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID, err)
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

// FindUserByEmail retrieves a user and its password hash by email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	var m models.User
	err := r.Pool.QueryRow(ctx,
		`SELECT user_id, name, email, password_hash, wallet_balance, created_at, last_updated_at
		 FROM users WHERE email = $1;`, email).
		Scan(&m.UserID, &m.Name, &m.Email, &m.PasswordHash, &m.WalletBalance, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.ErrUserNotFound
		}
		return nil, "", apperrors.NewAppError(500, "failed to find user by email", err)
	}
	u := mapping.ToDomainUser(m)
	return &u, m.PasswordHash, nil
}
