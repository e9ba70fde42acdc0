package models

import "time"

// User is the database representation of a traveller.
type User struct {
	UserID        string    `db:"user_id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	PasswordHash  string    `db:"password_hash"`
	WalletBalance int64     `db:"wallet_balance"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
