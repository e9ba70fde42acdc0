package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/voyago/travel_booking_app/internal/core/ports/services"
	"github.com/voyago/travel_booking_app/internal/middleware"
)

// walletService exposes the account ledger. Atomicity and per-user
// linearizability are guaranteed by the repository; this layer adds input
// validation and logging.
type walletService struct {
	walletRepo portsrepo.WalletRepositoryFacade
}

// NewWalletService creates a new WalletService.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade) portssvc.WalletSvcFacade {
	return &walletService{walletRepo: walletRepo}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// Credit tops up the wallet. There is no upper bound on the balance.
func (s *walletService) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, apperrors.ErrInvalidAmount
	}

	newBalance, err := s.walletRepo.CreditWallet(ctx, userID, amount, "wallet top-up")
	if err != nil {
		return 0, fmt.Errorf("failed to credit wallet for user %s: %w", userID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Wallet credited",
		slog.Int64("amount", amount),
		slog.Int64("new_balance", newBalance),
	)
	return newBalance, nil
}

// Debit charges the wallet.
func (s *walletService) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, apperrors.ErrInvalidAmount
	}

	newBalance, err := s.walletRepo.DebitWallet(ctx, userID, amount, "wallet debit")
	if err != nil {
		return 0, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Wallet debited",
		slog.Int64("amount", amount),
		slog.Int64("new_balance", newBalance),
	)
	return newBalance, nil
}

// GetBalance returns the current wallet balance.
func (s *walletService) GetBalance(ctx context.Context, userID string) (int64, error) {
	return s.walletRepo.GetWalletBalance(ctx, userID)
}

// ListTransactions returns the wallet ledger history, newest first.
func (s *walletService) ListTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error) {
	return s.walletRepo.ListWalletTransactions(ctx, userID)
}
