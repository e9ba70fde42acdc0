package utils

import (
	"crypto/rand"
	"fmt"

	"github.com/voyago/travel_booking_app/internal/core/domain"
)

// referenceAlphabet omits easily-confused characters (0/O, 1/I/L).
const referenceAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// referenceSuffixLen is the random part of a booking reference. 31^8 values
// make collisions rare; the repository's uniqueness constraint catches the
// rest and the service retries with a fresh reference.
const referenceSuffixLen = 8

var typePrefixes = map[domain.BookingType]string{
	domain.BookingFlight:  "FL",
	domain.BookingHotel:   "HT",
	domain.BookingTrain:   "TR",
	domain.BookingBus:     "BS",
	domain.BookingCab:     "CB",
	domain.BookingHoliday: "HD",
}

// NewBookingReference generates a human-readable booking reference for the
// given type, e.g. "FL-K7Q2MX9A". Uniqueness is not guaranteed here; callers
// must rely on the store's uniqueness constraint and retry on collision.
func NewBookingReference(t domain.BookingType) (string, error) {
	prefix, ok := typePrefixes[t]
	if !ok {
		return "", fmt.Errorf("no reference prefix for booking type %q", t)
	}

	b := make([]byte, referenceSuffixLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i := range b {
		b[i] = referenceAlphabet[int(b[i])%len(referenceAlphabet)]
	}
	return prefix + "-" + string(b), nil
}

// ReferencePrefix returns the two-letter reference prefix for a booking type.
func ReferencePrefix(t domain.BookingType) string {
	return typePrefixes[t]
}
