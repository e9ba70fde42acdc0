package domain

// User represents a traveller in the domain. The wallet balance lives on the
// user record and is mutated only through the wallet repository's debit and
// credit operations, never assigned directly.
type User struct {
	UserID        string `json:"userID"` // Primary Key (UUID)
	Name          string `json:"name"`
	Email         string `json:"email"`
	WalletBalance int64  `json:"walletBalance"` // minor currency units, never negative
	AuditFields
}
