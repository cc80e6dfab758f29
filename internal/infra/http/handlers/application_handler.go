package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/floobyte/site-api/internal/entity"
	"github.com/floobyte/site-api/internal/infra/http/middleware"
	"github.com/floobyte/site-api/internal/usecase"
)

type ApplicationHandler struct {
	Repo     entity.ApplicationRepository
	CreateUC *usecase.CreateApplicationUseCase
}

func NewApplicationHandler(repo entity.ApplicationRepository, createUC *usecase.CreateApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{Repo: repo, CreateUC: createUC}
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Repo.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to submit application")
		return
	}

	app, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordIntakeSubmission("application")
	writeJSON(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Application not found")
		return
	}
	deleted, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete application")
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "Application not found")
		return
	}
	writeMessage(w, http.StatusOK, "Application deleted")
}
