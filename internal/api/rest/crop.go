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

// CropAdd handles POST /crop/add (admin). The body is an array of crop
// records; the first invalid record aborts the whole upload. Duplicate
// names are skipped and show up in the failed count.
func (h *Handler) CropAdd(w http.ResponseWriter, r *http.Request) {
	var docs []map[string]interface{}
	if err := decodeInto(r, &docs); err != nil {
		respondError(w, http.StatusBadRequest, "डेटा ऐरे (array) में होना चाहिए | Data must be an array of crops")
		return
	}

	crops := make([]*models.Crop, 0, len(docs))
	for _, doc := range docs {
		if err := validate.Crop(doc); err != nil {
			respondValidation(w, err)
			return
		}
		var c models.Crop
		if err := remapDoc(doc, &c); err != nil {
			respondError(w, http.StatusBadRequest, "❌ फसल जोड़ने में असफल | Failed to insert crops")
			return
		}
		crops = append(crops, &c)
	}

	inserted, err := h.repo.InsertCrops(r.Context(), crops)
	if err != nil {
		log.Printf("[crop] bulk insert failed: %v", err)
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"message":  "✅ फसलें सफलतापूर्वक जोड़ी गईं | Crops added successfully",
		"inserted": inserted,
		"failed":   len(crops) - inserted,
	})
}

// CropNames handles GET /crop/all. Public: the dropdown loads before login.
func (h *Handler) CropNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.repo.ListCropNames(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "❌ फसलें लाने में त्रुटि | Failed to fetch crops")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"crops":   names,
	})
}

// CropDetails handles GET /crop/details/{name}: the crop record merged
// with its cultivation guide when one matches the same name.
func (h *Handler) CropDetails(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(mux.Vars(r)["name"])

	ctx := r.Context()
	crop, err := h.repo.GetCropByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "❌ Crop not found")
			return
		}
		respondInternal(w)
		return
	}

	merged := structToDoc(crop)
	cultivation, err := h.repo.GetCultivationByName(ctx, name)
	if err == nil {
		overlayDoc(merged, cultivation)
	} else if !errors.Is(err, repository.ErrNotFound) {
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"crop":    merged,
	})
}

// CropByName handles GET /crop/{name}, case-insensitive.
func (h *Handler) CropByName(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(mux.Vars(r)["name"])
	crop, err := h.repo.GetCropByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "❌ यह फसल उपलब्ध नहीं है | Crop not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "❌ फसल डेटा लाने में त्रुटि | Error fetching crop data")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"crop":    crop,
	})
}

// CropUpdate handles PATCH /crop/update (admin). The target crop is named
// in the body because the frontend drives this from a dropdown.
func (h *Handler) CropUpdate(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDoc(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if docString(doc, "name") == "" {
		respondError(w, http.StatusBadRequest, "❌ फसल का नाम देना ज़रूरी है | Crop name required")
		return
	}
	if err := validate.Crop(doc); err != nil {
		respondValidation(w, err)
		return
	}
	var c models.Crop
	if err := remapDoc(doc, &c); err != nil {
		respondError(w, http.StatusBadRequest, "❌ फसल अपडेट करने में असफल | Failed to update crop")
		return
	}

	updated, err := h.repo.UpdateCropByName(r.Context(), &c)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "❌ यह फसल उपलब्ध नहीं है | Crop not found")
			return
		}
		log.Printf("[crop] update failed: %v", err)
		respondInternal(w)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "✅ फसल अपडेट हो गई | Crop updated successfully",
		"crop":    updated,
	})
}

// CropDelete handles DELETE /crop/delete (admin), name in body.
func (h *Handler) CropDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeInto(r, &req); err != nil || strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "❌ फसल का नाम देना ज़रूरी है | Crop name required")
		return
	}

	if err := h.repo.DeleteCropByName(r.Context(), strings.TrimSpace(req.Name)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "❌ यह फसल उपलब्ध नहीं है | Crop not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "❌ फसल हटाने में त्रुटि | Failed to delete crop")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "✅ फसल हटा दी गई | Crop deleted successfully",
	})
}
