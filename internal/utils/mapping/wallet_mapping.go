package mapping

import (
	"github.com/voyago/travel_booking_app/internal/core/domain"
	"github.com/voyago/travel_booking_app/internal/models"
)

// ToDomainWalletTransaction converts a wallet ledger model to its domain form.
func ToDomainWalletTransaction(m models.WalletTransaction) domain.WalletTransaction {
	return domain.WalletTransaction{
		TxnID:            m.TxnID,
		UserID:           m.UserID,
		Type:             domain.WalletTxnType(m.TxnType),
		Amount:           m.Amount,
		BalanceAfter:     m.BalanceAfter,
		BookingReference: m.BookingReference,
		Memo:             m.Memo,
		CreatedAt:        m.CreatedAt,
	}
}

// ToDomainWalletTransactions converts a slice of wallet ledger models.
func ToDomainWalletTransactions(ms []models.WalletTransaction) []domain.WalletTransaction {
	out := make([]domain.WalletTransaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainWalletTransaction(m)
	}
	return out
}
