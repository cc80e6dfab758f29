package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/floobyte/site-api/internal/entity"
)

type ProjectHandler struct {
	Repo entity.ProjectRepository
}

func NewProjectHandler(repo entity.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{Repo: repo}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Repo.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	project, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Project not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var project entity.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil || project.Title == "" {
		writeMessage(w, http.StatusBadRequest, "Failed to create project")
		return
	}
	if err := h.Repo.Create(r.Context(), &project); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to create project")
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	var upd entity.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to update project")
		return
	}
	project, err := h.Repo.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Project not found")
			return
		}
		writeMessage(w, http.StatusBadRequest, "Failed to update project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	deleted, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	writeMessage(w, http.StatusOK, "Project deleted successfully")
}
