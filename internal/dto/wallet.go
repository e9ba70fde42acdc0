package dto

import (
	"time"

	"github.com/voyago/travel_booking_app/internal/core/domain"
)

// CreditWalletRequest defines the data needed to top up a wallet.
type CreditWalletRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// WalletBalanceResponse defines the data returned for a balance query.
type WalletBalanceResponse struct {
	UserID  string `json:"userID"`
	Balance int64  `json:"balance"`
}

// WalletTransactionResponse defines the data returned for a ledger entry.
type WalletTransactionResponse struct {
	TxnID            string               `json:"txnID"`
	Type             domain.WalletTxnType `json:"type"`
	Amount           int64                `json:"amount"`
	BalanceAfter     int64                `json:"balanceAfter"`
	BookingReference string               `json:"bookingReference,omitempty"`
	Memo             string               `json:"memo,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

// ListWalletTransactionsResponse wraps the wallet ledger history.
type ListWalletTransactionsResponse struct {
	Transactions []WalletTransactionResponse `json:"transactions"`
}

// ToListWalletTransactionsResponse converts domain ledger entries to DTOs.
func ToListWalletTransactionsResponse(txns []domain.WalletTransaction) ListWalletTransactionsResponse {
	out := make([]WalletTransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = WalletTransactionResponse{
			TxnID:            t.TxnID,
			Type:             t.Type,
			Amount:           t.Amount,
			BalanceAfter:     t.BalanceAfter,
			BookingReference: t.BookingReference,
			Memo:             t.Memo,
			CreatedAt:        t.CreatedAt,
		}
	}
	return ListWalletTransactionsResponse{Transactions: out}
}
