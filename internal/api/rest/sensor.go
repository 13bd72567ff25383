package rest

import (
	"errors"
	"log"
	"net/http"

	"github.com/iNitishSheoran/KhetMitra-BE/internal/models"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/pkg/metrics"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/repository"
)

// SensorIngest handles POST /sensor, the field station push. Unknown JSON
// keys are ignored rather than rejected; firmware revisions add fields
// faster than the backend ships.
func (h *Handler) SensorIngest(w http.ResponseWriter, r *http.Request) {
	var reading models.SensorReading
	if err := decodeInto(r, &reading); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.repo.CreateSensorReading(r.Context(), &reading); err != nil {
		log.Printf("[sensor] save failed: %v", err)
		respondInternal(w)
		return
	}
	metrics.SensorReadingsTotal.Inc()

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Data saved",
		"data":    reading,
	})
}

// SensorLatest handles GET /sensor/latest. An empty table is a 200 with
// success=false; the dashboard polls this before the first station comes
// online and treats it as "no data yet", not an error.
func (h *Handler) SensorLatest(w http.ResponseWriter, r *http.Request) {
	latest, err := h.repo.GetLatestSensorReading(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondJSON(w, http.StatusOK, map[string]interface{}{
				"success": false,
				"message": "No data found",
			})
			return
		}
		respondInternal(w)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    latest,
	})
}
