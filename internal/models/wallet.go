package models

import "time"

// WalletTransaction is the database representation of a wallet ledger entry.
type WalletTransaction struct {
	TxnID            string    `db:"txn_id"`
	UserID           string    `db:"user_id"`
	TxnType          string    `db:"txn_type"`
	Amount           int64     `db:"amount"`
	BalanceAfter     int64     `db:"balance_after"`
	BookingReference string    `db:"booking_reference"`
	Memo             string    `db:"memo"`
	CreatedAt        time.Time `db:"created_at"`
}
