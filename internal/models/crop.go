package models

// NPK holds recommended nutrient amounts, each as a [min, max] pair in kg/ha.
type NPK struct {
	N []float64 `json:"N"`
	P []float64 `json:"P"`
	K []float64 `json:"K"`
}

// Crop is reference data describing the growing envelope for one crop. All
// range fields are [min, max] pairs.
type Crop struct {
	ID                  string    `json:"_id"`
	Name                string    `json:"name"`
	NPK                 NPK       `json:"npk"`
	TemperatureC        []float64 `json:"temperature_c"`
	HumidityPercent     []float64 `json:"humidity_percent"`
	SoilMoisturePercent []float64 `json:"soil_moisture_percent"`
	PH                  []float64 `json:"ph"`
	ECDsM               []float64 `json:"ec_ds_m"`
}

// CropName is the dropdown projection.
type CropName struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
