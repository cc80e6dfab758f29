package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/floobyte/site-api/internal/entity"
)

type BadgeHandler struct {
	Repo entity.BadgeRepository
}

func NewBadgeHandler(repo entity.BadgeRepository) *BadgeHandler {
	return &BadgeHandler{Repo: repo}
}

func (h *BadgeHandler) List(w http.ResponseWriter, r *http.Request) {
	badges, err := h.Repo.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch badges")
		return
	}
	writeJSON(w, http.StatusOK, badges)
}

type createBadgeRequest struct {
	Label      string  `json:"label"`
	ImageURL   string  `json:"imageUrl"`
	LinkURL    *string `json:"linkUrl"`
	Enabled    *bool   `json:"enabled"`
	OrderIndex *int    `json:"orderIndex"`
}

func (h *BadgeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBadgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Label == "" || req.ImageURL == "" {
		writeMessage(w, http.StatusBadRequest, "Failed to create badge")
		return
	}

	badge := entity.Badge{
		Label:    req.Label,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Enabled:  true,
	}
	if req.Enabled != nil {
		badge.Enabled = *req.Enabled
	}
	if req.OrderIndex != nil {
		badge.OrderIndex = *req.OrderIndex
	}

	if err := h.Repo.Create(r.Context(), &badge); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to create badge")
		return
	}
	writeJSON(w, http.StatusCreated, badge)
}

func (h *BadgeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Badge not found")
		return
	}
	var upd entity.BadgeUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to update badge")
		return
	}
	badge, err := h.Repo.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Badge not found")
			return
		}
		writeMessage(w, http.StatusBadRequest, "Failed to update badge")
		return
	}
	writeJSON(w, http.StatusOK, badge)
}

func (h *BadgeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Badge not found")
		return
	}
	deleted, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete badge")
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "Badge not found")
		return
	}
	writeMessage(w, http.StatusOK, "Badge deleted")
}
