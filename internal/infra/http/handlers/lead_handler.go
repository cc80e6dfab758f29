package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/floobyte/site-api/internal/entity"
	"github.com/floobyte/site-api/internal/infra/http/middleware"
	"github.com/floobyte/site-api/internal/usecase"
)

type LeadHandler struct {
	Repo     entity.LeadRepository
	CreateUC *usecase.CreateLeadUseCase
}

func NewLeadHandler(repo entity.LeadRepository, createUC *usecase.CreateLeadUseCase) *LeadHandler {
	return &LeadHandler{Repo: repo, CreateUC: createUC}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repo.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch leads")
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Lead not found")
		return
	}
	lead, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Lead not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch lead")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// Create answers the public quote form. The success status is 200, not 201;
// the form client treats any 2xx with the created row as done.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid lead payload")
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordIntakeSubmission("lead")
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Lead not found")
		return
	}
	var upd entity.LeadUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid lead payload")
		return
	}
	lead, err := h.Repo.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Lead not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to update lead")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// Delete reports success instead of a 404: deleting an already-removed lead
// is not an error to the admin console.
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]bool{"success": false})
		return
	}
	ok, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete lead")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": ok})
}
