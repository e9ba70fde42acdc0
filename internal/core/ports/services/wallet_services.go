package services

import (
	"context"

	"github.com/voyago/travel_booking_app/internal/core/domain"
)

// WalletSvcFacade exposes the account ledger: per-user wallet balances and
// their mutations.
type WalletSvcFacade interface {
	// Credit tops up the wallet and returns the new balance.
	Credit(ctx context.Context, userID string, amount int64) (int64, error)

	// Debit charges the wallet and returns the new balance. Fails with
	// apperrors.ErrInsufficientFunds when the balance cannot cover amount.
	Debit(ctx context.Context, userID string, amount int64) (int64, error)

	// GetBalance returns the current wallet balance.
	GetBalance(ctx context.Context, userID string) (int64, error)

	// ListTransactions returns the wallet ledger history, newest first.
	ListTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error)
}
