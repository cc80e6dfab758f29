package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/floobyte/site-api/internal/entity"
	"github.com/floobyte/site-api/internal/infra/http/middleware"
	"github.com/floobyte/site-api/internal/usecase"
)

type MessageHandler struct {
	Repo     entity.MessageRepository
	CreateUC *usecase.CreateMessageUseCase
}

func NewMessageHandler(repo entity.MessageRepository, createUC *usecase.CreateMessageUseCase) *MessageHandler {
	return &MessageHandler{Repo: repo, CreateUC: createUC}
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Repo.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Message not found")
		return
	}
	msg, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Message not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch message")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to create message")
		return
	}

	msg, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordIntakeSubmission("message")
	writeJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Message not found")
		return
	}
	ok, err := h.Repo.MarkRead(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to mark message as read")
		return
	}
	if !ok {
		writeMessage(w, http.StatusNotFound, "Message not found")
		return
	}
	writeMessage(w, http.StatusOK, "Message marked as read")
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Message not found")
		return
	}
	deleted, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to delete message")
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "Message not found")
		return
	}
	writeMessage(w, http.StatusOK, "Message deleted successfully")
}
