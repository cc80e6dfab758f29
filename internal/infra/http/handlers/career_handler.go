package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/floobyte/site-api/internal/entity"
)

type CareerHandler struct {
	Repo entity.CareerRepository
}

func NewCareerHandler(repo entity.CareerRepository) *CareerHandler {
	return &CareerHandler{Repo: repo}
}

func (h *CareerHandler) List(w http.ResponseWriter, r *http.Request) {
	careers, err := h.Repo.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch careers")
		return
	}
	writeJSON(w, http.StatusOK, careers)
}

func (h *CareerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Career not found")
		return
	}
	career, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Career not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch career")
		return
	}
	writeJSON(w, http.StatusOK, career)
}

func (h *CareerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var career entity.Career
	if err := json.NewDecoder(r.Body).Decode(&career); err != nil || career.Title == "" || career.Type == "" {
		writeMessage(w, http.StatusBadRequest, "Failed to create career")
		return
	}
	if career.Status == "" {
		career.Status = "Open"
	}
	if err := h.Repo.Create(r.Context(), &career); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to create career")
		return
	}
	writeJSON(w, http.StatusCreated, career)
}

func (h *CareerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Career not found")
		return
	}
	var upd entity.CareerUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to update career")
		return
	}
	career, err := h.Repo.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Career not found")
			return
		}
		writeMessage(w, http.StatusBadRequest, "Failed to update career")
		return
	}
	writeJSON(w, http.StatusOK, career)
}

func (h *CareerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Career not found")
		return
	}
	deleted, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete career")
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "Career not found")
		return
	}
	writeMessage(w, http.StatusOK, "Career deleted successfully")
}
