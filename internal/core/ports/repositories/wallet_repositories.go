package repositories

import (
	"context"

	"github.com/voyago/travel_booking_app/internal/core/domain"
)

// WalletRepositoryFacade defines the wallet ledger operations. Every mutation
// is atomic and linearizable per user: the balance check, the balance update
// and the ledger entry insert happen inside one critical section, so
// concurrent debits can never jointly drive a balance negative.
type WalletRepositoryFacade interface {
	// DebitWallet atomically decrements the user's balance and appends a
	// DEBIT ledger entry. Returns the new balance.
	// Fails with apperrors.ErrInvalidAmount (amount <= 0),
	// apperrors.ErrUserNotFound, or apperrors.ErrInsufficientFunds.
	DebitWallet(ctx context.Context, userID string, amount int64, memo string) (int64, error)

	// CreditWallet atomically increments the user's balance and appends a
	// CREDIT ledger entry. There is no upper bound. Returns the new balance.
	// Fails with apperrors.ErrInvalidAmount or apperrors.ErrUserNotFound.
	CreditWallet(ctx context.Context, userID string, amount int64, memo string) (int64, error)

	// GetWalletBalance is a pure read; it never blocks on another user's
	// in-flight mutation.
	GetWalletBalance(ctx context.Context, userID string) (int64, error)

	// ListWalletTransactions returns the user's ledger entries, newest first.
	ListWalletTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error)
}
