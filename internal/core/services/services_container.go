package services

import (
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/voyago/travel_booking_app/internal/core/ports/services"
)

// NewServiceContainer wires the repositories into the full set of service
// facades. publisher and productCache are optional; pass nil to disable
// event publishing and catalog caching.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, publisher BookingEventPublisher, productCache ProductCache) *portssvc.ServiceContainer {
	promoSvc := NewPromoService(repos.OfferRepo)

	var bookingOpts []BookingServiceOption
	if publisher != nil {
		bookingOpts = append(bookingOpts, WithEventPublisher(publisher))
	}

	var catalogOpts []CatalogServiceOption
	if productCache != nil {
		catalogOpts = append(catalogOpts, WithProductCache(productCache))
	}

	return &portssvc.ServiceContainer{
		User:    NewUserService(repos.UserRepo),
		Wallet:  NewWalletService(repos.WalletRepo),
		Promo:   promoSvc,
		Booking: NewBookingService(repos.BookingRepo, promoSvc, bookingOpts...),
		Catalog: NewCatalogService(catalogOpts...),
	}
}
