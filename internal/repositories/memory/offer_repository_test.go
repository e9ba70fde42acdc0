package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	"github.com/voyago/travel_booking_app/internal/repositories/memory"
)

func TestFindOfferByCode_CaseInsensitive(t *testing.T) {
	store := memory.NewStore()
	store.SeedOffers(domain.Offer{
		Code:       "SAVE10",
		Category:   string(domain.BookingFlight),
		Type:       domain.OfferPercentage,
		Discount:   decimal.NewFromInt(10),
		ValidUntil: time.Now().UTC().AddDate(0, 0, 7),
	})
	repos := memory.NewRepositoryProvider(store)

	for _, code := range []string{"SAVE10", "save10", "Save10"} {
		offer, err := repos.OfferRepo.FindOfferByCode(context.Background(), code)
		require.NoError(t, err, "code %q should resolve", code)
		assert.Equal(t, "SAVE10", offer.Code)
	}

	_, err := repos.OfferRepo.FindOfferByCode(context.Background(), "NOSUCH")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
