package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
	"github.com/voyago/travel_booking_app/internal/models"
	"github.com/voyago/travel_booking_app/internal/utils/mapping"
)

type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a new repository for wallet balances and
// their ledger entries.
func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

// lockWalletTx locks the user's row and returns the current balance. The row
// lock serializes all wallet mutations for that user until the surrounding
// transaction ends.
func lockWalletTx(ctx context.Context, tx pgx.Tx, userID string) (int64, error) {
	var balance int64
	err := tx.QueryRow(ctx, `SELECT wallet_balance FROM users WHERE user_id = $1 FOR UPDATE;`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, apperrors.NewAppError(500, "failed to lock user wallet "+userID, err)
	}
	return balance, nil
}

// applyWalletDeltaTx writes the new balance and appends the matching ledger
// entry. Callers must hold the user's row lock via lockWalletTx.
func applyWalletDeltaTx(ctx context.Context, tx pgx.Tx, userID string, txnType domain.WalletTxnType, amount, newBalance int64, bookingRef, memo string, now time.Time) error {
	_, err := tx.Exec(ctx,
		`UPDATE users SET wallet_balance = $1, last_updated_at = $2 WHERE user_id = $3;`,
		newBalance, now, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update wallet balance for user "+userID, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO wallet_transactions (txn_id, user_id, txn_type, amount, balance_after, booking_reference, memo, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		uuid.NewString(), userID, string(txnType), amount, newBalance, bookingRef, memo, now,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert wallet transaction for user "+userID, err)
	}
	return nil
}

// debitWalletTx performs the balance check and debit inside an open
// transaction. Shared with the booking repository so a booking insert and
// its debit form one atomic unit.
func debitWalletTx(ctx context.Context, tx pgx.Tx, userID string, amount int64, bookingRef, memo string, now time.Time) (int64, error) {
	balance, err := lockWalletTx(ctx, tx, userID)
	if err != nil {
		return 0, err
	}
	if balance < amount {
		return 0, fmt.Errorf("%w: balance %d, requested %d", apperrors.ErrInsufficientFunds, balance, amount)
	}

	newBalance := balance - amount
	if err := applyWalletDeltaTx(ctx, tx, userID, domain.WalletDebit, amount, newBalance, bookingRef, memo, now); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// creditWalletTx increments the balance inside an open transaction. Shared
// with the booking repository for cancellation refunds.
func creditWalletTx(ctx context.Context, tx pgx.Tx, userID string, amount int64, bookingRef, memo string, now time.Time) (int64, error) {
	balance, err := lockWalletTx(ctx, tx, userID)
	if err != nil {
		return 0, err
	}

	newBalance := balance + amount
	if err := applyWalletDeltaTx(ctx, tx, userID, domain.WalletCredit, amount, newBalance, bookingRef, memo, now); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// DebitWallet atomically decrements the user's balance.
func (r *PgxWalletRepository) DebitWallet(ctx context.Context, userID string, amount int64, memo string) (int64, error) {
	if amount <= 0 {
		return 0, apperrors.ErrInvalidAmount
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	newBalance, err := debitWalletTx(ctx, tx, userID, amount, "", memo, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// CreditWallet atomically increments the user's balance.
func (r *PgxWalletRepository) CreditWallet(ctx context.Context, userID string, amount int64, memo string) (int64, error) {
	if amount <= 0 {
		return 0, apperrors.ErrInvalidAmount
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	newBalance, err := creditWalletTx(ctx, tx, userID, amount, "", memo, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// GetWalletBalance reads the current balance without taking the row lock.
func (r *PgxWalletRepository) GetWalletBalance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := r.Pool.QueryRow(ctx, `SELECT wallet_balance FROM users WHERE user_id = $1;`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, apperrors.NewAppError(500, "failed to read wallet balance for user "+userID, err)
	}
	return balance, nil
}

// ListWalletTransactions returns the user's ledger entries, newest first.
func (r *PgxWalletRepository) ListWalletTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT txn_id, user_id, txn_type, amount, balance_after, booking_reference, memo, created_at
		 FROM wallet_transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC;`, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query wallet transactions for user "+userID, err)
	}
	defer rows.Close()

	var txns []models.WalletTransaction
	for rows.Next() {
		var m models.WalletTransaction
		if err := rows.Scan(&m.TxnID, &m.UserID, &m.TxnType, &m.Amount, &m.BalanceAfter, &m.BookingReference, &m.Memo, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan wallet transaction", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating wallet transactions", err)
	}

	return mapping.ToDomainWalletTransactions(txns), nil
}
