package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/floobyte/site-api/internal/entity"
	"github.com/floobyte/site-api/internal/usecase"
)

func newLeadHandler(repo *MockLeadRepository) *LeadHandler {
	return NewLeadHandler(repo, usecase.NewCreateLeadUseCase(repo))
}

func TestLeadCreateReturns200WithCreatedRow(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Lead).ID = 42
	}).Return(nil)

	handler := newLeadHandler(repo)

	body := []byte(`{"name":"Jane","email":"jane@example.com","services":["Web","SEO"]}`)
	req := httptest.NewRequest("POST", "/api/leads", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var lead entity.Lead
	json.NewDecoder(w.Body).Decode(&lead)
	assert.Equal(t, 42, lead.ID)
	assert.Equal(t, "Jane", lead.Name)
	assert.Equal(t, "New", lead.Status)
	assert.Equal(t, "Quote", lead.Source)
}

func TestLeadCreateMissingFields(t *testing.T) {
	repo := new(MockLeadRepository)
	handler := newLeadHandler(repo)

	body := []byte(`{"name":"","email":"jane@example.com"}`)
	req := httptest.NewRequest("POST", "/api/leads", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, "Name and email are required", resp["message"])
	repo.AssertNotCalled(t, "Create")
}

func TestLeadCreateInvalidJSON(t *testing.T) {
	handler := newLeadHandler(new(MockLeadRepository))

	req := httptest.NewRequest("POST", "/api/leads", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeadGetNotFound(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Get", mock.Anything, 99).Return(nil, entity.ErrNotFound)

	handler := newLeadHandler(repo)

	req := withURLParam(httptest.NewRequest("GET", "/api/leads/99", nil), "id", "99")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, "Lead not found", resp["message"])
}

func TestLeadDeleteReportsSuccessFlag(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Delete", mock.Anything, 7).Return(true, nil)
	repo.On("Delete", mock.Anything, 8).Return(false, nil)

	handler := newLeadHandler(repo)

	req := withURLParam(httptest.NewRequest("DELETE", "/api/leads/7", nil), "id", "7")
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]bool
	json.NewDecoder(w.Body).Decode(&resp)
	assert.True(t, resp["success"])

	// Deleting a row that is already gone is still a 200, not a 404.
	req = withURLParam(httptest.NewRequest("DELETE", "/api/leads/8", nil), "id", "8")
	w = httptest.NewRecorder()
	handler.Delete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	json.NewDecoder(w.Body).Decode(&resp)
	assert.False(t, resp["success"])
}

func TestLeadUpdateModeration(t *testing.T) {
	status := "Interested"
	updated := &entity.Lead{ID: 7, Name: "Jane", Email: "jane@example.com", Status: status}

	repo := new(MockLeadRepository)
	repo.On("Update", mock.Anything, 7, mock.Anything).Return(updated, nil)

	handler := newLeadHandler(repo)

	body := []byte(`{"status":"Interested"}`)
	req := withURLParam(httptest.NewRequest("PUT", "/api/leads/7", bytes.NewReader(body)), "id", "7")
	w := httptest.NewRecorder()

	handler.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var lead entity.Lead
	json.NewDecoder(w.Body).Decode(&lead)
	assert.Equal(t, "Interested", lead.Status)
}
