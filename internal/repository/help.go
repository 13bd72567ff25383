package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/models"
)

// CreateHelpRequest inserts a new help ticket owned by h.UserID.
func (r *SQLiteRepository) CreateHelpRequest(ctx context.Context, h *models.HelpRequest) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.Status == "" {
		h.Status = models.HelpStatusPending
	}
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	query := `
		INSERT INTO help_requests (id, user_id, name, state, district, phone_no, email, help, image_url, status, answer, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		h.ID, h.UserID, h.Name, h.State, h.District, h.PhoneNo, h.Email,
		h.Help, h.ImageURL, h.Status, h.Answer, h.CreatedAt, h.UpdatedAt,
	)
	return err
}

// GetHelpRequest returns the ticket or ErrNotFound.
func (r *SQLiteRepository) GetHelpRequest(ctx context.Context, id string) (*models.HelpRequest, error) {
	var h models.HelpRequest
	err := r.db.GetContext(ctx, &h, `SELECT * FROM help_requests WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListHelpRequestsByUser returns the user's own tickets, newest first.
func (r *SQLiteRepository) ListHelpRequestsByUser(ctx context.Context, userID string) ([]*models.HelpRequest, error) {
	var list []*models.HelpRequest
	query := `SELECT * FROM help_requests WHERE user_id = ? ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &list, query, userID)
	return list, err
}

// ListHelpRequests returns all tickets with an owner projection, newest first.
// Admin listing.
func (r *SQLiteRepository) ListHelpRequests(ctx context.Context) ([]*models.HelpRequestWithOwner, error) {
	var list []*models.HelpRequestWithOwner
	query := `
		SELECT h.*, u.full_name AS owner_full_name, u.email_id AS owner_email_id
		FROM help_requests h
		JOIN users u ON u.id = h.user_id
		ORDER BY h.created_at DESC
	`
	err := r.db.SelectContext(ctx, &list, query)
	return list, err
}

// UpdateHelpRequestStatus sets the ticket status and returns the updated row.
func (r *SQLiteRepository) UpdateHelpRequestStatus(ctx context.Context, id, status string) (*models.HelpRequest, error) {
	query := `UPDATE help_requests SET status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return r.GetHelpRequest(ctx, id)
}

// DeleteHelpRequest removes the ticket.
func (r *SQLiteRepository) DeleteHelpRequest(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM help_requests WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
