package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/floobyte/site-api/internal/entity"
)

type SettingHandler struct {
	Repo entity.SettingRepository
}

func NewSettingHandler(repo entity.SettingRepository) *SettingHandler {
	return &SettingHandler{Repo: repo}
}

type settingResponse struct {
	Key   string  `json:"key"`
	Value *string `json:"value"`
}

// Get returns the stored value, or a null value when the key was never set.
func (h *SettingHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	setting, err := h.Repo.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeJSON(w, http.StatusOK, settingResponse{Key: key, Value: nil})
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch setting")
		return
	}
	writeJSON(w, http.StatusOK, settingResponse{Key: key, Value: setting.Value})
}

type setSettingRequest struct {
	Value string `json:"value"`
}

func (h *SettingHandler) Set(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var req setSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := h.Repo.Set(r.Context(), key, req.Value); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to update setting")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key, "value": req.Value})
}
