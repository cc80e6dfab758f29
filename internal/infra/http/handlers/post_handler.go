package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/floobyte/site-api/internal/entity"
)

type PostHandler struct {
	Repo entity.PostRepository
}

func NewPostHandler(repo entity.PostRepository) *PostHandler {
	return &PostHandler{Repo: repo}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Repo.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Post not found")
		return
	}
	post, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// GetBySlug is the public article view. It counts the read and returns the
// row with the incremented counter.
func (h *PostHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, err := h.Repo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	if err := h.Repo.IncrementViews(r.Context(), post.ID); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	updated, err := h.Repo.Get(r.Context(), post.ID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *PostHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to increment views")
		return
	}
	if err := h.Repo.IncrementViews(r.Context(), id); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to increment views")
		return
	}

	views := 0
	if post, err := h.Repo.Get(r.Context(), id); err == nil {
		views = post.Views
	}
	writeJSON(w, http.StatusOK, map[string]int{"views": views})
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var post entity.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil || post.Title == "" {
		writeMessage(w, http.StatusBadRequest, "Failed to create post")
		return
	}
	if post.Status == "" {
		post.Status = "Draft"
	}
	if err := h.Repo.Create(r.Context(), &post); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to create post")
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Post not found")
		return
	}
	var upd entity.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to update post")
		return
	}
	post, err := h.Repo.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		writeMessage(w, http.StatusBadRequest, "Failed to update post")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Post not found")
		return
	}
	deleted, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "Post not found")
		return
	}
	writeMessage(w, http.StatusOK, "Post deleted successfully")
}
