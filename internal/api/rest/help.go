package rest

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iNitishSheoran/KhetMitra-BE/internal/auth"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/models"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/pkg/validate"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/repository"
)

// HelpSubmit handles POST /help/submit. The owner is always the
// authenticated requester, never a userId from the body.
func (h *Handler) HelpSubmit(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDoc(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.HelpRequest(doc); err != nil {
		respondValidation(w, err)
		return
	}

	ctx := r.Context()
	id := auth.IdentityFromContext(ctx)

	ticket := &models.HelpRequest{
		UserID:   id.ID,
		Name:     docString(doc, "name"),
		State:    docString(doc, "state"),
		District: docString(doc, "district"),
		PhoneNo:  docString(doc, "phoneNo"),
		Email:    docString(doc, "email"),
		Help:     docString(doc, "help"),
	}
	if img := docString(doc, "imageUrl"); img != "" {
		ticket.ImageURL = &img
	}

	if err := h.repo.CreateHelpRequest(ctx, ticket); err != nil {
		log.Printf("[help] submit failed: %v", err)
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "✅ Help request submitted successfully",
		"help":    ticket,
	})
}

// HelpMyRequests handles GET /help/myRequests, newest first.
func (h *Handler) HelpMyRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := auth.IdentityFromContext(ctx)
	requests, err := h.repo.ListHelpRequestsByUser(ctx, id.ID)
	if err != nil {
		respondInternal(w)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"requests": requests,
	})
}

// HelpDelete handles DELETE /help/delete/{id}. Owner only, and only within
// an hour of submission. A ticket that exists but belongs to someone else
// gets the same response as a missing one.
func (h *Handler) HelpDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := auth.IdentityFromContext(ctx)
	ticketID := mux.Vars(r)["id"]

	ticket, err := h.repo.GetHelpRequest(ctx, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusForbidden, "❌ Unauthorized or help request not found")
			return
		}
		respondInternal(w)
		return
	}
	if err := auth.CheckOwnership(ticket.UserID, id.ID); err != nil {
		respondError(w, http.StatusForbidden, "❌ Unauthorized or help request not found")
		return
	}
	if err := auth.CheckWindow(ticket.CreatedAt, auth.HelpRequestDeleteWindow, time.Now()); err != nil {
		respondError(w, http.StatusForbidden, "⏳ Help request can only be deleted within 1 hour of creation")
		return
	}

	if err := h.repo.DeleteHelpRequest(ctx, ticketID); err != nil {
		log.Printf("[help] delete failed: %v", err)
		respondInternal(w)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "✅ Help request deleted successfully",
	})
}

// HelpAll handles GET /help/all (admin). Tickets come back newest first
// with a small owner projection joined in.
func (h *Handler) HelpAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.repo.ListHelpRequests(r.Context())
	if err != nil {
		respondInternal(w)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"requests": requests,
	})
}

// HelpUpdateStatus handles PATCH /help/status/{id} (admin).
func (h *Handler) HelpUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeInto(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !models.ValidHelpStatus(req.Status) {
		respondError(w, http.StatusBadRequest, "Status must be one of: pending, in-progress, resolved")
		return
	}

	updated, err := h.repo.UpdateHelpRequestStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "❌ Help request not found")
			return
		}
		respondInternal(w)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"message":     "✅ Help request status updated",
		"updatedHelp": updated,
	})
}
