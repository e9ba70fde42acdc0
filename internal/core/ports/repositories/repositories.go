package repositories

// RepositoryProvider bundles all repository implementations so the service
// container can be wired from a single value. Both the pgsql and the
// in-memory implementations satisfy it.
type RepositoryProvider struct {
	UserRepo    UserRepositoryFacade
	WalletRepo  WalletRepositoryFacade
	BookingRepo BookingRepositoryFacade
	OfferRepo   OfferRepositoryFacade
}
