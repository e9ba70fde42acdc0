package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
)

type offerRepository struct {
	store *Store
}

func newOfferRepository(store *Store) portsrepo.OfferRepositoryFacade {
	return &offerRepository{store: store}
}

var _ portsrepo.OfferRepositoryFacade = (*offerRepository)(nil)

func (r *offerRepository) FindOfferByCode(ctx context.Context, code string) (*domain.Offer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.offers[strings.ToUpper(code)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := o
	return &out, nil
}

func (r *offerRepository) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	offers := make([]domain.Offer, 0, len(s.offers))
	for _, o := range s.offers {
		offers = append(offers, o)
	}
	sort.Slice(offers, func(i, j int) bool { return offers[i].Code < offers[j].Code })
	return offers, nil
}
