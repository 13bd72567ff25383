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

type cultivationRow struct {
	ID     string `db:"id"`
	NameHi string `db:"name_hi"`
	NameEn string `db:"name_en"`
	Doc    string `db:"doc"`
}

func (row *cultivationRow) toModel() (*models.Cultivation, error) {
	var c models.Cultivation
	if err := json.Unmarshal([]byte(row.Doc), &c); err != nil {
		return nil, fmt.Errorf("decode cultivation %s: %w", row.ID, err)
	}
	c.ID = row.ID
	return &c, nil
}

// InsertCultivations bulk-inserts cultivation guides, skipping duplicate
// names. Any other insert failure aborts the batch. Returns the number
// actually inserted.
func (r *SQLiteRepository) InsertCultivations(ctx context.Context, list []*models.Cultivation) (int, error) {
	inserted := 0
	for _, c := range list {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		doc, err := json.Marshal(c)
		if err != nil {
			return inserted, err
		}
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO cultivations (id, name_hi, name_en, doc) VALUES (?, ?, ?, ?)`,
			c.ID, c.NameHi, c.NameEn, string(doc))
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

// ListCultivationNames returns Hindi/English name pairs sorted by English
// name, for dropdowns.
func (r *SQLiteRepository) ListCultivationNames(ctx context.Context) ([]*models.CultivationName, error) {
	var names []*models.CultivationName
	rows := []cultivationRow{}
	query := `SELECT id, name_hi, name_en, '' AS doc FROM cultivations ORDER BY name_en ASC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	for _, row := range rows {
		names = append(names, &models.CultivationName{ID: row.ID, NameHi: row.NameHi, NameEn: row.NameEn})
	}
	return names, nil
}

// GetCultivationByName matches either the Hindi or the English crop name,
// case-insensitively for the latter.
func (r *SQLiteRepository) GetCultivationByName(ctx context.Context, name string) (*models.Cultivation, error) {
	var row cultivationRow
	query := `SELECT * FROM cultivations WHERE name_hi = ? OR name_en = ? COLLATE NOCASE`
	err := r.db.GetContext(ctx, &row, query, name, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toModel()
}
