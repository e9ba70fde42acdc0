package domain

import "time"

// WalletTxnType is the direction of a wallet ledger entry.
type WalletTxnType string

const (
	WalletDebit  WalletTxnType = "DEBIT"
	WalletCredit WalletTxnType = "CREDIT"
)

// WalletTransaction is an append-only ledger entry recording a single wallet
// mutation. BalanceAfter is the wallet balance immediately after the entry
// was applied, captured inside the same atomic unit as the mutation itself.
type WalletTransaction struct {
	TxnID            string        `json:"txnID"`
	UserID           string        `json:"userID"`
	Type             WalletTxnType `json:"type"`
	Amount           int64         `json:"amount"` // always positive
	BalanceAfter     int64         `json:"balanceAfter"`
	BookingReference string        `json:"bookingReference,omitempty"` // set for booking debits/refunds
	Memo             string        `json:"memo,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
}
