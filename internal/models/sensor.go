package models

import "time"

// SensorReading is one field-station sample pushed by the ESP32 unit.
type SensorReading struct {
	ID          string    `json:"_id" db:"id"`
	SoilTemp    float64   `json:"soilTemp" db:"soil_temp"`
	SoilMoist   float64   `json:"soilMoist" db:"soil_moist"`
	SoilPH      float64   `json:"soilPH" db:"soil_ph"`
	Nitrogen    float64   `json:"nitrogen" db:"nitrogen"`
	Phosphorus  float64   `json:"phosphorus" db:"phosphorus"`
	Potassium   float64   `json:"potassium" db:"potassium"`
	BmpTemp     float64   `json:"bmpTemp" db:"bmp_temp"`
	Pressure    float64   `json:"pressure" db:"pressure"`
	Altitude    float64   `json:"altitude" db:"altitude"`
	Ds18b20Temp float64   `json:"ds18b20Temp" db:"ds18b20_temp"`
	Rain        float64   `json:"rain" db:"rain"`
	LDR         float64   `json:"ldr" db:"ldr"`
	Button      int       `json:"button" db:"button"`
	Voltage     float64   `json:"voltage" db:"voltage"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
