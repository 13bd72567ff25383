package models

import "time"

// RevokedToken records a session token JTI invalidated by logout (or account
// deletion) before its natural expiry. Rows past ExpiresAt are dead weight and
// get purged opportunistically.
type RevokedToken struct {
	ID        string    `json:"id" db:"id"`
	TokenID   string    `json:"token_id" db:"token_id"` // JWT ID (JTI)
	UserID    string    `json:"user_id" db:"user_id"`
	RevokedAt time.Time `json:"revoked_at" db:"revoked_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	Reason    string    `json:"reason,omitempty" db:"reason"` // logout, account_deletion
}
