package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/models"
)

// CreateSensorReading stores one field-station sample.
func (r *SQLiteRepository) CreateSensorReading(ctx context.Context, s *models.SensorReading) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO sensor_readings (id, soil_temp, soil_moist, soil_ph, nitrogen, phosphorus, potassium, bmp_temp, pressure, altitude, ds18b20_temp, rain, ldr, button, voltage, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.SoilTemp, s.SoilMoist, s.SoilPH, s.Nitrogen, s.Phosphorus,
		s.Potassium, s.BmpTemp, s.Pressure, s.Altitude, s.Ds18b20Temp,
		s.Rain, s.LDR, s.Button, s.Voltage, s.CreatedAt,
	)
	return err
}

// GetLatestSensorReading returns the most recent sample or ErrNotFound.
func (r *SQLiteRepository) GetLatestSensorReading(ctx context.Context) (*models.SensorReading, error) {
	var s models.SensorReading
	query := `SELECT * FROM sensor_readings ORDER BY created_at DESC LIMIT 1`
	err := r.db.GetContext(ctx, &s, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
