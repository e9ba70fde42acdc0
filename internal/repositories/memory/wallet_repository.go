package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
)

type walletRepository struct {
	store *Store
}

func newWalletRepository(store *Store) portsrepo.WalletRepositoryFacade {
	return &walletRepository{store: store}
}

var _ portsrepo.WalletRepositoryFacade = (*walletRepository)(nil)

// applyDelta mutates the balance and appends the ledger entry. Callers must
// hold the user's lock and the store write lock.
func applyDelta(s *Store, rec *userRecord, txnType domain.WalletTxnType, amount, newBalance int64, bookingRef, memo string, now time.Time) {
	rec.user.WalletBalance = newBalance
	rec.user.LastUpdatedAt = now
	userID := rec.user.UserID
	txn := domain.WalletTransaction{
		TxnID:            uuid.NewString(),
		UserID:           userID,
		Type:             txnType,
		Amount:           amount,
		BalanceAfter:     newBalance,
		BookingReference: bookingRef,
		Memo:             memo,
		CreatedAt:        now,
	}
	// Prepend so listings come out newest first.
	s.walletTxns[userID] = append([]domain.WalletTransaction{txn}, s.walletTxns[userID]...)
}

// debitLocked performs the balance check and debit. Callers must hold the
// user's lock and the store write lock.
func debitLocked(s *Store, userID string, amount int64, bookingRef, memo string, now time.Time) (int64, error) {
	rec, ok := s.users[userID]
	if !ok {
		return 0, apperrors.ErrUserNotFound
	}
	if rec.user.WalletBalance < amount {
		return 0, fmt.Errorf("%w: balance %d, requested %d", apperrors.ErrInsufficientFunds, rec.user.WalletBalance, amount)
	}
	newBalance := rec.user.WalletBalance - amount
	applyDelta(s, rec, domain.WalletDebit, amount, newBalance, bookingRef, memo, now)
	return newBalance, nil
}

// creditLocked increments the balance. Callers must hold the user's lock and
// the store write lock.
func creditLocked(s *Store, userID string, amount int64, bookingRef, memo string, now time.Time) (int64, error) {
	rec, ok := s.users[userID]
	if !ok {
		return 0, apperrors.ErrUserNotFound
	}
	newBalance := rec.user.WalletBalance + amount
	applyDelta(s, rec, domain.WalletCredit, amount, newBalance, bookingRef, memo, now)
	return newBalance, nil
}

func (r *walletRepository) DebitWallet(ctx context.Context, userID string, amount int64, memo string) (int64, error) {
	if amount <= 0 {
		return 0, apperrors.ErrInvalidAmount
	}
	lock := r.store.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return debitLocked(r.store, userID, amount, "", memo, time.Now().UTC())
}

func (r *walletRepository) CreditWallet(ctx context.Context, userID string, amount int64, memo string) (int64, error) {
	if amount <= 0 {
		return 0, apperrors.ErrInvalidAmount
	}
	lock := r.store.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return creditLocked(r.store, userID, amount, "", memo, time.Now().UTC())
}

func (r *walletRepository) GetWalletBalance(ctx context.Context, userID string) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[userID]
	if !ok {
		return 0, apperrors.ErrUserNotFound
	}
	return rec.user.WalletBalance, nil
}

func (r *walletRepository) ListWalletTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	txns := s.walletTxns[userID]
	out := make([]domain.WalletTransaction, len(txns))
	copy(out, txns)
	return out, nil
}
