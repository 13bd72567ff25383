package rest

import (
	"errors"
	"log"
	"net/http"

	"github.com/iNitishSheoran/KhetMitra-BE/internal/auth"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/pkg/validate"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/repository"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/session"
)

// ProfileView handles GET /profile/view.
func (h *Handler) ProfileView(w http.ResponseWriter, r *http.Request) {
	id := auth.IdentityFromContext(r.Context())
	u, err := h.repo.GetUserByID(r.Context(), id.ID)
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
		"user":    u.Project(),
	})
}

// ProfileEdit handles PATCH /profile/edit. Only whitelisted fields may
// change; anything else fails validation before a single write happens.
// Concurrent edits are last-write-wins.
func (h *Handler) ProfileEdit(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDoc(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.ProfileEdit(doc); err != nil {
		respondValidation(w, err)
		return
	}

	ctx := r.Context()
	id := auth.IdentityFromContext(ctx)
	u, err := h.repo.GetUserByID(ctx, id.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondInternal(w)
		return
	}

	if _, ok := doc["fullName"]; ok {
		u.FullName = docString(doc, "fullName")
	}
	if _, ok := doc["phoneNumber"]; ok {
		u.PhoneNumber = docString(doc, "phoneNumber")
	}
	if _, ok := doc["state"]; ok {
		u.State = docString(doc, "state")
	}
	if _, ok := doc["district"]; ok {
		u.District = docString(doc, "district")
	}
	if _, ok := doc["crops"]; ok {
		u.Crops = docStringSlice(doc, "crops")
	}
	if _, ok := doc["age"]; ok {
		u.Age = docInt(doc, "age")
	}

	if err := h.repo.UpdateUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("[profile] update failed: %v", err)
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Profile updated successfully",
		"user":    u.Project(),
	})
}

// ProfileDelete handles DELETE /profile/delete. The account is removed, its
// help requests cascade, and the current session token is revoked so the
// cookie cannot be replayed against a recreated account.
func (h *Handler) ProfileDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := auth.IdentityFromContext(ctx)

	if err := h.repo.DeleteUser(ctx, id.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("[profile] delete failed: %v", err)
		respondInternal(w)
		return
	}

	h.revokeCurrentToken(r, "account_deletion")
	session.Clear(w, h.cfg.Production)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Account deleted successfully",
	})
}
