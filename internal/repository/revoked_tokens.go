package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/models"
)

// RevokeToken records a session token JTI as revoked. Expired rows are purged
// on the way in so the table stays bounded by the 7-day token lifetime.
func (r *SQLiteRepository) RevokeToken(ctx context.Context, t *models.RevokedToken) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.RevokedAt.IsZero() {
		t.RevokedAt = time.Now().UTC()
	}

	_, _ = r.db.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at < ?`, time.Now().UTC())

	query := `
		INSERT INTO revoked_tokens (id, token_id, user_id, revoked_at, expires_at, reason)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(token_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.TokenID, t.UserID, t.RevokedAt, t.ExpiresAt, t.Reason)
	return err
}

// IsTokenRevoked reports whether the JTI was revoked and has not yet aged out.
func (r *SQLiteRepository) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM revoked_tokens WHERE token_id = ? AND expires_at > ?`
	if err := r.db.GetContext(ctx, &count, query, tokenID, time.Now().UTC()); err != nil {
		return false, err
	}
	return count > 0, nil
}
