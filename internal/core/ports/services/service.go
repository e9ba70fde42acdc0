package services

// ServiceContainer holds all service facades for dependency injection into
// the HTTP layer.
type ServiceContainer struct {
	User    UserSvcFacade
	Wallet  WalletSvcFacade
	Promo   PromoSvcFacade
	Booking BookingSvcFacade
	Catalog CatalogSvcFacade
}
