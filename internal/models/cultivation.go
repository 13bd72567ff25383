package models

// FertilizerNPK is the recommended fertilizer dose; keys N, P2O5, K2O each map
// to a [min, max] pair in kg/ha.
type FertilizerNPK struct {
	RecommendedRange map[string][]float64 `json:"recommended_range,omitempty"`
	Notes            string               `json:"notes,omitempty"`
}

// Cultivation is a step-by-step growing guide, bilingual (Hindi/English).
// Loosely structured sections stay as maps; the uploader controls their keys.
type Cultivation struct {
	ID                    string                 `json:"_id"`
	NameHi                string                 `json:"name_hi"`
	NameEn                string                 `json:"name_en"`
	Season                string                 `json:"season"`
	SowingWindow          string                 `json:"sowing_window"`
	Soil                  string                 `json:"soil"`
	SeedNursery           map[string]interface{} `json:"seed_nursery"`
	FertilizerNPK         *FertilizerNPK         `json:"fertilizer_NPK_kg_per_ha,omitempty"`
	IrrigationSchedule    string                 `json:"irrigation_schedule"`
	WeedControl           string                 `json:"weed_control"`
	PestDiseaseManagement string                 `json:"pest_disease_management"`
	HarvestAndPostharvest string                 `json:"harvest_and_postharvest"`
	TimelineMonths        map[string]interface{} `json:"timeline_months"`
	DetailedStepsEn       []string               `json:"detailed_steps_en"`
	DetailedStepsHi       []string               `json:"detailed_steps_hi"`
	Sources               []string               `json:"sources"`
}

// CultivationName is the dropdown projection.
type CultivationName struct {
	ID     string `json:"_id"`
	NameHi string `json:"name_hi"`
	NameEn string `json:"name_en"`
}
