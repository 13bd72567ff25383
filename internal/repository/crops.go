package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/models"
)

// Crop documents are stored whole as JSON with the name extracted for
// case-insensitive lookup, mirroring how the uploader ships them.

type cropRow struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Doc  string `db:"doc"`
}

func (row *cropRow) toModel() (*models.Crop, error) {
	var c models.Crop
	if err := json.Unmarshal([]byte(row.Doc), &c); err != nil {
		return nil, fmt.Errorf("decode crop %s: %w", row.ID, err)
	}
	c.ID = row.ID
	c.Name = row.Name
	return &c, nil
}

// InsertCrops bulk-inserts crops, skipping duplicate names. Any other
// insert failure aborts the batch. Returns the number actually inserted.
func (r *SQLiteRepository) InsertCrops(ctx context.Context, crops []*models.Crop) (int, error) {
	inserted := 0
	for _, c := range crops {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		doc, err := json.Marshal(c)
		if err != nil {
			return inserted, err
		}
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO crops (id, name, doc) VALUES (?, ?, ?)`,
			c.ID, c.Name, string(doc))
		if err != nil {
			if IsDuplicate(err) {
				continue
			}
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// ListCropNames returns all crop names sorted ascending, for dropdowns.
func (r *SQLiteRepository) ListCropNames(ctx context.Context) ([]*models.CropName, error) {
	var names []*models.CropName
	rows := []cropRow{}
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name, '' AS doc FROM crops ORDER BY name ASC`); err != nil {
		return nil, err
	}
	for _, row := range rows {
		names = append(names, &models.CropName{ID: row.ID, Name: row.Name})
	}
	return names, nil
}

// GetCropByName looks up a crop by name, case-insensitively.
func (r *SQLiteRepository) GetCropByName(ctx context.Context, name string) (*models.Crop, error) {
	var row cropRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM crops WHERE name = ? COLLATE NOCASE`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toModel()
}

// UpdateCropByName replaces the stored document for a crop, matched by name
// case-insensitively, and returns the updated crop.
func (r *SQLiteRepository) UpdateCropByName(ctx context.Context, c *models.Crop) (*models.Crop, error) {
	existing, err := r.GetCropByName(ctx, c.Name)
	if err != nil {
		return nil, err
	}
	c.ID = existing.ID
	doc, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	_, err = r.db.ExecContext(ctx, `UPDATE crops SET name = ?, doc = ? WHERE id = ?`, c.Name, string(doc), c.ID)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCropByName removes a crop by name, case-insensitively.
func (r *SQLiteRepository) DeleteCropByName(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM crops WHERE name = ? COLLATE NOCASE`, name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
