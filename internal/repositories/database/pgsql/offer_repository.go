package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
	"github.com/voyago/travel_booking_app/internal/models"
	"github.com/voyago/travel_booking_app/internal/utils/mapping"
)

type PgxOfferRepository struct {
	BaseRepository
}

// newPgxOfferRepository creates a new read-only repository for offers.
func newPgxOfferRepository(pool *pgxpool.Pool) portsrepo.OfferRepositoryFacade {
	return &PgxOfferRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OfferRepositoryFacade = (*PgxOfferRepository)(nil)

const offerColumns = `code, category, offer_type, discount, min_amount, max_discount, valid_until, description`

// FindOfferByCode matches the code case-insensitively.
func (r *PgxOfferRepository) FindOfferByCode(ctx context.Context, code string) (*domain.Offer, error) {
	var m models.Offer
	err := r.Pool.QueryRow(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE UPPER(code) = UPPER($1);`, code).
		Scan(&m.Code, &m.Category, &m.OfferType, &m.Discount, &m.MinAmount, &m.MaxDiscount, &m.ValidUntil, &m.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find offer "+code, err)
	}
	o := mapping.ToDomainOffer(m)
	return &o, nil
}

// ListOffers returns all offers.
func (r *PgxOfferRepository) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+offerColumns+` FROM offers ORDER BY code;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query offers", err)
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		var m models.Offer
		if err := rows.Scan(&m.Code, &m.Category, &m.OfferType, &m.Discount, &m.MinAmount, &m.MaxDiscount, &m.ValidUntil, &m.Description); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan offer", err)
		}
		offers = append(offers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating offers", err)
	}
	return mapping.ToDomainOffers(offers), nil
}
