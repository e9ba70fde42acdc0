// Package catalog ships the static travel product inventory served by the
// catalog endpoints. Products are reference data only: bookings snapshot the
// chosen product into their details and never consult the catalog again.
package catalog

import "github.com/voyago/travel_booking_app/internal/core/domain"

var products = []domain.Product{
	{
		ProductID: "fl-del-bom-6e204",
		Type:      domain.BookingFlight,
		Name:      "IndiGo 6E-204",
		Provider:  "IndiGo",
		Origin:    "DEL",
		Dest:      "BOM",
		Price:     549900,
		Extras:    map[string]string{"class": "economy", "departure": "06:40"},
	},
	{
		ProductID: "fl-bom-blr-ai505",
		Type:      domain.BookingFlight,
		Name:      "Air India AI-505",
		Provider:  "Air India",
		Origin:    "BOM",
		Dest:      "BLR",
		Price:     432500,
		Extras:    map[string]string{"class": "economy", "departure": "09:15"},
	},
	{
		ProductID: "fl-del-goa-uk871",
		Type:      domain.BookingFlight,
		Name:      "Vistara UK-871",
		Provider:  "Vistara",
		Origin:    "DEL",
		Dest:      "GOI",
		Price:     612000,
		Extras:    map[string]string{"class": "premium economy", "departure": "11:30"},
	},
	{
		ProductID: "ht-goa-taj",
		Type:      domain.BookingHotel,
		Name:      "Taj Holiday Village Resort",
		Provider:  "Taj Hotels",
		Location:  "Candolim, Goa",
		Price:     1250000,
		Extras:    map[string]string{"room": "sea view", "nights": "1"},
	},
	{
		ProductID: "ht-blr-leela",
		Type:      domain.BookingHotel,
		Name:      "The Leela Palace",
		Provider:  "The Leela",
		Location:  "Old Airport Road, Bengaluru",
		Price:     980000,
		Extras:    map[string]string{"room": "deluxe", "nights": "1"},
	},
	{
		ProductID: "tr-del-bom-rajdhani",
		Type:      domain.BookingTrain,
		Name:      "Mumbai Rajdhani 12952",
		Provider:  "Indian Railways",
		Origin:    "NDLS",
		Dest:      "BCT",
		Price:     289500,
		Extras:    map[string]string{"class": "2A"},
	},
	{
		ProductID: "tr-blr-maa-shatabdi",
		Type:      domain.BookingTrain,
		Name:      "Chennai Shatabdi 12028",
		Provider:  "Indian Railways",
		Origin:    "SBC",
		Dest:      "MAS",
		Price:     98000,
		Extras:    map[string]string{"class": "CC"},
	},
	{
		ProductID: "bs-del-jai-volvo",
		Type:      domain.BookingBus,
		Name:      "Delhi to Jaipur Volvo AC Sleeper",
		Provider:  "RSRTC",
		Origin:    "Delhi",
		Dest:      "Jaipur",
		Price:     85000,
	},
	{
		ProductID: "cb-blr-airport",
		Type:      domain.BookingCab,
		Name:      "Bengaluru Airport Transfer",
		Provider:  "CityCabs",
		Origin:    "Indiranagar",
		Dest:      "KIAL",
		Price:     120000,
		Extras:    map[string]string{"vehicle": "sedan"},
	},
	{
		ProductID: "hd-kerala-5d",
		Type:      domain.BookingHoliday,
		Name:      "Kerala Backwaters 5D/4N",
		Provider:  "Voyago Holidays",
		Location:  "Kochi, Alleppey, Munnar",
		Price:     4599900,
		Extras:    map[string]string{"guests": "2", "meals": "breakfast"},
	},
	{
		ProductID: "hd-rajasthan-7d",
		Type:      domain.BookingHoliday,
		Name:      "Royal Rajasthan 7D/6N",
		Provider:  "Voyago Holidays",
		Location:  "Jaipur, Jodhpur, Udaipur",
		Price:     6899900,
		Extras:    map[string]string{"guests": "2", "meals": "half board"},
	},
}

// ProductsByType returns the catalog entries for the given booking type.
// The returned slice is a copy; callers may not mutate catalog data.
func ProductsByType(bookingType domain.BookingType) []domain.Product {
	out := make([]domain.Product, 0, 4)
	for _, p := range products {
		if p.Type == bookingType {
			out = append(out, p)
		}
	}
	return out
}
