package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/floobyte/site-api/internal/entity"
)

type ServiceHandler struct {
	Repo entity.ServiceRepository
}

func NewServiceHandler(repo entity.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Repo: repo}
}

func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.Repo.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch services")
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Service not found")
		return
	}
	svc, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Service not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch service")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var svc entity.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil || svc.Title == "" {
		writeMessage(w, http.StatusBadRequest, "Failed to create service")
		return
	}
	if svc.Status == "" {
		svc.Status = "Active"
	}
	if err := h.Repo.Create(r.Context(), &svc); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to create service")
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Service not found")
		return
	}
	var upd entity.ServiceUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to update service")
		return
	}
	svc, err := h.Repo.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Service not found")
			return
		}
		writeMessage(w, http.StatusBadRequest, "Failed to update service")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Service not found")
		return
	}
	deleted, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "Service not found")
		return
	}
	writeMessage(w, http.StatusOK, "Service deleted successfully")
}
