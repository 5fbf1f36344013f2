// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-coffee-lobby/internal/app"
	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/utils"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

// listItems serves GET /api/item?offset=&limit=. Both parameters are
// optional; a zero limit returns everything from offset on.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	offset, err := queryUint(r, "offset")
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid offset")
		http.Error(w, app.MsgInvalidPage, http.StatusBadRequest)
		return
	}
	limit, err := queryUint(r, "limit")
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid limit")
		http.Error(w, app.MsgInvalidPage, http.StatusBadRequest)
		return
	}

	items, err := h.services.ItemService.ListItems(r.Context(), userID, offset, limit)
	if err != nil {
		writeError(w, r, err, "listing items failed")
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	item, ok := decodeItem(w, r)
	if !ok {
		return
	}

	created, err := h.services.ItemService.CreateItem(r.Context(), userID, item)
	if err != nil {
		writeError(w, r, err, "item creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateItem serves PUT /api/item/{id}. The path identity wins over one in
// the body.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	item, ok := decodeItem(w, r)
	if !ok {
		return
	}
	item.ID = chi.URLParam(r, "id")

	updated, err := h.services.ItemService.UpdateItem(r.Context(), userID, item)
	if err != nil {
		writeError(w, r, err, "item update failed")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.services.ItemService.DeleteItem(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "item deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		logger.FromRequest(r).Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return 0, false
	}
	return userID, true
}

func decodeItem(w http.ResponseWriter, r *http.Request) (models.Item, bool) {
	var item models.Item
	if err := utils.DecodeJSON(r, &item); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return models.Item{}, false
	}
	return item, true
}

func queryUint(r *http.Request, name string) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}
