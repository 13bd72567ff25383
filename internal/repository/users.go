package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/models"
)

// userRow is the storage shape; list and object fields are JSON text columns.
type userRow struct {
	ID           string         `db:"id"`
	FullName     string         `db:"full_name"`
	PhoneNumber  string         `db:"phone_number"`
	EmailID      string         `db:"email_id"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	State        string         `db:"state"`
	District     string         `db:"district"`
	Crops        string         `db:"crops"`
	Age          int            `db:"age"`
	CropHistory  string         `db:"crop_history"`
	PhotoURL     string         `db:"photo_url"`
	Biometric    sql.NullString `db:"biometric"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (row *userRow) toModel() (*models.User, error) {
	u := &models.User{
		ID:           row.ID,
		FullName:     row.FullName,
		PhoneNumber:  row.PhoneNumber,
		EmailID:      row.EmailID,
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
		State:        row.State,
		District:     row.District,
		Age:          row.Age,
		PhotoURL:     row.PhotoURL,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if err := json.Unmarshal([]byte(row.Crops), &u.Crops); err != nil {
		return nil, fmt.Errorf("decode crops for user %s: %w", row.ID, err)
	}
	if err := json.Unmarshal([]byte(row.CropHistory), &u.CropHistory); err != nil {
		return nil, fmt.Errorf("decode crop history for user %s: %w", row.ID, err)
	}
	if row.Biometric.Valid && row.Biometric.String != "" {
		var b models.Biometric
		if err := json.Unmarshal([]byte(row.Biometric.String), &b); err != nil {
			return nil, fmt.Errorf("decode biometric for user %s: %w", row.ID, err)
		}
		u.Biometric = &b
	}
	return u, nil
}

func encodeUserJSON(u *models.User) (crops, history string, biometric sql.NullString, err error) {
	if u.Crops == nil {
		u.Crops = []string{}
	}
	if u.CropHistory == nil {
		u.CropHistory = []string{}
	}
	cb, err := json.Marshal(u.Crops)
	if err != nil {
		return "", "", sql.NullString{}, err
	}
	hb, err := json.Marshal(u.CropHistory)
	if err != nil {
		return "", "", sql.NullString{}, err
	}
	if u.Biometric != nil {
		bb, err := json.Marshal(u.Biometric)
		if err != nil {
			return "", "", sql.NullString{}, err
		}
		biometric = sql.NullString{String: string(bb), Valid: true}
	}
	return string(cb), string(hb), biometric, nil
}

// CreateUser inserts a new user. ID is assigned when empty. Unique violations
// on email or phone surface as the driver's constraint error.
func (r *SQLiteRepository) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	crops, history, biometric, err := encodeUserJSON(u)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (id, full_name, phone_number, email_id, password_hash, role, state, district, crops, age, crop_history, photo_url, biometric, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		u.ID, u.FullName, u.PhoneNumber, u.EmailID, u.PasswordHash, u.Role,
		u.State, u.District, crops, u.Age, history, u.PhotoURL, biometric,
		u.CreatedAt, u.UpdatedAt,
	)
	return err
}

// GetUserByID returns the user or ErrNotFound.
func (r *SQLiteRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.getUser(ctx, `SELECT * FROM users WHERE id = ?`, id)
}

// GetUserByEmail looks up by the stored (normalized) email.
func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUser(ctx, `SELECT * FROM users WHERE email_id = ?`, email)
}

// GetUserByPhone looks up by phone number.
func (r *SQLiteRepository) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.getUser(ctx, `SELECT * FROM users WHERE phone_number = ?`, phone)
}

func (r *SQLiteRepository) getUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toModel()
}

// UpdateUser writes the full mutable field set. Last write wins; concurrent
// profile edits are not serialized.
func (r *SQLiteRepository) UpdateUser(ctx context.Context, u *models.User) error {
	u.UpdatedAt = time.Now().UTC()
	crops, history, biometric, err := encodeUserJSON(u)
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET full_name = ?, phone_number = ?, state = ?, district = ?, crops = ?,
		    age = ?, crop_history = ?, photo_url = ?, biometric = ?, role = ?, updated_at = ?
		WHERE id = ?
	`
	res, err := r.db.ExecContext(ctx, query,
		u.FullName, u.PhoneNumber, u.State, u.District, crops,
		u.Age, history, u.PhotoURL, biometric, u.Role, u.UpdatedAt, u.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes the account; owned help requests cascade at the schema level.
func (r *SQLiteRepository) DeleteUser(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
