package rest

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/iNitishSheoran/KhetMitra-BE/internal/models"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/pkg/validate"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/repository"
)

// CultivationAdd handles POST /cultivation/add (admin). Bulk upload with
// the same abort-on-first-invalid contract as crop upload.
func (h *Handler) CultivationAdd(w http.ResponseWriter, r *http.Request) {
	var docs []map[string]interface{}
	if err := decodeInto(r, &docs); err != nil {
		respondError(w, http.StatusBadRequest, "❌ Data must be an array of cultivation entries")
		return
	}

	entries := make([]*models.Cultivation, 0, len(docs))
	for _, doc := range docs {
		if err := validate.Cultivation(doc); err != nil {
			respondValidation(w, err)
			return
		}
		var c models.Cultivation
		if err := remapDoc(doc, &c); err != nil {
			respondError(w, http.StatusBadRequest, "❌ Failed to insert cultivation data")
			return
		}
		entries = append(entries, &c)
	}

	inserted, err := h.repo.InsertCultivations(r.Context(), entries)
	if err != nil {
		log.Printf("[cultivation] bulk insert failed: %v", err)
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"message":  "✅ Cultivation data inserted successfully",
		"inserted": inserted,
		"failed":   len(entries) - inserted,
	})
}

// CultivationNames handles GET /cultivation/names, the dropdown source.
func (h *Handler) CultivationNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.repo.ListCultivationNames(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "❌ Failed to fetch crop names")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"crops":   names,
	})
}

// CultivationByName handles GET /cultivation/{name}. The name matches
// either the Hindi or the English name, case-insensitively.
func (h *Handler) CultivationByName(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(mux.Vars(r)["name"])
	crop, err := h.repo.GetCultivationByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "❌ Cultivation data not found for this crop")
			return
		}
		respondError(w, http.StatusInternalServerError, "❌ Error fetching cultivation data")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"crop":    crop,
	})
}
