// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-family-vault/internal/app"
	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/utils"
	"github.com/MKhiriev/go-family-vault/models"
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.createItem", ErrNoUserInContext)
		return
	}

	var item models.VaultItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createItem").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.VaultService.CreateItem(r.Context(), userID, item)
	if err != nil {
		writeError(w, r, "*Handler.createItem", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// listItems serves GET /api/vault/items?scope=owned|shared&limit=N.
// scope defaults to owned; limit 0 means no limit.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.listItems", ErrNoUserInContext)
		return
	}

	query := r.URL.Query()

	scope := models.ScopeOwned
	if s := query.Get("scope"); s != "" {
		scope = models.ItemScope(s)
	}

	var limit uint64
	if l := query.Get("limit"); l != "" {
		parsed, err := strconv.ParseUint(l, 10, 64)
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.listItems").Msg("invalid limit")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	items, err := h.services.VaultService.ListItems(r.Context(), userID, scope, limit)
	if err != nil {
		writeError(w, r, "*Handler.listItems", err)
		return
	}
	if items == nil {
		items = []models.VaultItem{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.getItem", ErrNoUserInContext)
		return
	}

	item, err := h.services.VaultService.GetItem(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getItem", err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.deleteItem", ErrNoUserInContext)
		return
	}

	if err := h.services.VaultService.DeleteItem(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteItem", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listShares(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.listShares", ErrNoUserInContext)
		return
	}

	grants, err := h.services.VaultService.ListGrants(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.listShares", err)
		return
	}

	resp := models.GrantsResponse{MemberIDs: make([]string, 0, len(grants))}
	for _, g := range grants {
		resp.MemberIDs = append(resp.MemberIDs, g.MemberID)
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) replaceShares(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.replaceShares", ErrNoUserInContext)
		return
	}

	var req models.ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.replaceShares").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	version, err := h.services.VaultService.ReplaceGrants(r.Context(), userID, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, "*Handler.replaceShares", err)
		return
	}

	utils.WriteJSON(w, models.ShareResponse{ShareVersion: version}, http.StatusOK)
}

func (h *Handler) deleteShares(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.deleteShares", ErrNoUserInContext)
		return
	}

	if err := h.services.VaultService.DeleteGrants(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteShares", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
