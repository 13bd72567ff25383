package rest

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iNitishSheoran/KhetMitra-BE/internal/auth"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/models"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/repository"
)

// biometricLookup is the identifier triple the kiosk sends; exactly one of
// the three is enough to find the account.
type biometricLookup struct {
	UserID      string `json:"userId"`
	EmailID     string `json:"emailId"`
	PhoneNumber string `json:"phoneNumber"`
}

// findUser resolves a lookup by id, then email, then phone.
func (h *Handler) findUser(ctx context.Context, l biometricLookup) (*models.User, error) {
	switch {
	case l.UserID != "":
		return h.repo.GetUserByID(ctx, l.UserID)
	case l.EmailID != "":
		return h.repo.GetUserByEmail(ctx, auth.NormalizeEmail(l.EmailID))
	case l.PhoneNumber != "":
		return h.repo.GetUserByPhone(ctx, l.PhoneNumber)
	}
	return nil, repository.ErrNotFound
}

// BiometricEnroll handles POST /api/biometric/enroll. Only the sensor's
// template id is stored; the fingerprint template stays on the device.
func (h *Handler) BiometricEnroll(w http.ResponseWriter, r *http.Request) {
	var req struct {
		biometricLookup
		SensorModel      string `json:"sensorModel"`
		SensorTemplateID string `json:"sensorTemplateId"`
	}
	if err := decodeInto(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SensorModel == "" || req.SensorTemplateID == "" {
		respondError(w, http.StatusBadRequest, "sensorModel and sensorTemplateId required")
		return
	}

	ctx := r.Context()
	u, err := h.findUser(ctx, req.biometricLookup)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondInternal(w)
		return
	}

	now := time.Now().UTC()
	u.Biometric = &models.Biometric{
		Used:             true,
		SensorModel:      req.SensorModel,
		SensorTemplateID: req.SensorTemplateID,
		EnrolledAt:       &now,
	}
	if err := h.repo.UpdateUser(ctx, u); err != nil {
		log.Printf("[biometric] enroll update failed: %v", err)
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Biometric enrolled",
		"userId":  u.ID,
	})
}

// BiometricVerify handles POST /api/biometric/verify: compares the
// presented template id against the enrolled one.
func (h *Handler) BiometricVerify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		biometricLookup
		SensorTemplateID string `json:"sensorTemplateId"`
	}
	if err := decodeInto(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SensorTemplateID == "" {
		respondError(w, http.StatusBadRequest, "sensorTemplateId required")
		return
	}

	u, err := h.findUser(r.Context(), req.biometricLookup)
	if err != nil || u.Biometric == nil || !u.Biometric.Used {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			respondInternal(w)
			return
		}
		respondError(w, http.StatusNotFound, "User or biometric enrollment not found")
		return
	}

	if u.Biometric.SensorTemplateID != req.SensorTemplateID {
		respondError(w, http.StatusUnauthorized, "Biometric mismatch")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Biometric verified",
		"userId":  u.ID,
	})
}

// BiometricDelete handles DELETE /api/biometric/delete. Clears the stored
// metadata only; the template on the sensor is the operator's problem.
func (h *Handler) BiometricDelete(w http.ResponseWriter, r *http.Request) {
	var req biometricLookup
	if err := decodeInto(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	u, err := h.findUser(ctx, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondInternal(w)
		return
	}

	u.Biometric = &models.Biometric{Used: false}
	if err := h.repo.UpdateUser(ctx, u); err != nil {
		log.Printf("[biometric] delete update failed: %v", err)
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Biometric removed from DB (please also delete template on sensor if needed)",
	})
}

// BiometricUser handles GET /api/biometric/user/{id}, a metadata view.
func (h *Handler) BiometricUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.repo.GetUserByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user": map[string]interface{}{
			"_id":         u.ID,
			"fullName":    u.FullName,
			"emailId":     u.EmailID,
			"phoneNumber": u.PhoneNumber,
			"biometric":   u.Biometric,
		},
	})
}
