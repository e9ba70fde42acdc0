package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/travel_booking_app/internal/core/domain"
	"github.com/voyago/travel_booking_app/internal/utils"
)

func TestNewBookingReference_Format(t *testing.T) {
	tests := []struct {
		bookingType domain.BookingType
		prefix      string
	}{
		{domain.BookingFlight, "FL"},
		{domain.BookingHotel, "HT"},
		{domain.BookingTrain, "TR"},
		{domain.BookingBus, "BS"},
		{domain.BookingCab, "CB"},
		{domain.BookingHoliday, "HD"},
	}

	for _, tc := range tests {
		ref, err := utils.NewBookingReference(tc.bookingType)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(ref, tc.prefix+"-"), "reference %q should start with %s-", ref, tc.prefix)
		assert.Len(t, ref, len(tc.prefix)+1+8)

		suffix := ref[len(tc.prefix)+1:]
		for _, c := range suffix {
			assert.NotContains(t, "01OIL", string(c), "reference %q contains an ambiguous character", ref)
		}
	}
}

func TestNewBookingReference_UnknownTypeFails(t *testing.T) {
	_, err := utils.NewBookingReference("cruise")
	assert.Error(t, err)
}

func TestNewBookingReference_Distinct(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		ref, err := utils.NewBookingReference(domain.BookingFlight)
		require.NoError(t, err)
		_, dup := seen[ref]
		require.False(t, dup, "generated duplicate reference %q after %d draws", ref, i)
		seen[ref] = struct{}{}
	}
}
