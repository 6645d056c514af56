package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-family-vault/internal/app"
	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/utils"
	"github.com/MKhiriev/go-family-vault/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.getProfile", ErrNoUserInContext)
		return
	}

	profile, err := h.services.FamilyService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getProfile", err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) createFamily(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.createFamily", ErrNoUserInContext)
		return
	}

	var req models.Family
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createFamily").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	family, err := h.services.FamilyService.CreateFamily(r.Context(), userID, req.Name)
	if err != nil {
		writeError(w, r, "*Handler.createFamily", err)
		return
	}

	utils.WriteJSON(w, family, http.StatusCreated)
}

func (h *Handler) joinFamily(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.joinFamily", ErrNoUserInContext)
		return
	}

	var req models.JoinFamilyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.joinFamily").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.FamilyService.JoinFamily(r.Context(), userID, req.FamilyID); err != nil {
		writeError(w, r, "*Handler.joinFamily", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listFamilyMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.listFamilyMembers", ErrNoUserInContext)
		return
	}

	members, err := h.services.FamilyService.ListFamilyMembers(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listFamilyMembers", err)
		return
	}
	if members == nil {
		members = []models.Profile{}
	}

	utils.WriteJSON(w, members, http.StatusOK)
}
