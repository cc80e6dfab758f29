package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/floobyte/site-api/internal/entity"
	"github.com/floobyte/site-api/internal/infra/http/middleware"
	"github.com/floobyte/site-api/internal/usecase"
)

type ReviewHandler struct {
	Repo   entity.ReviewRepository
	SyncUC *usecase.SyncReviewsUseCase
}

func NewReviewHandler(repo entity.ReviewRepository, syncUC *usecase.SyncReviewsUseCase) *ReviewHandler {
	return &ReviewHandler{Repo: repo, SyncUC: syncUC}
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Repo.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

type createReviewRequest struct {
	Author string  `json:"author"`
	Rating *int    `json:"rating"`
	Text   *string `json:"text"`
	Source string  `json:"source"`
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Author == "" || req.Rating == nil {
		writeMessage(w, http.StatusBadRequest, "Failed to create review")
		return
	}

	review := entity.Review{
		Author: req.Author,
		Rating: *req.Rating,
		Text:   req.Text,
		Source: req.Source,
	}
	if review.Source == "" {
		review.Source = "Internal"
	}

	if err := h.Repo.Create(r.Context(), &review); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to create review")
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Review not found")
		return
	}
	deleted, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "Review not found")
		return
	}
	writeMessage(w, http.StatusOK, "Review deleted")
}

func (h *ReviewHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var input usecase.SyncReviewsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	count, err := h.SyncUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	source := strings.ToLower(input.Source)
	middleware.RecordReviewSync(source, count)

	label := "Google"
	if source == "trustpilot" {
		label = "Trustpilot"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Synced " + label + " Reviews",
		"count":   count,
	})
}
