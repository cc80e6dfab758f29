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
)

func TestSettingGetUnknownKeyReturnsNull(t *testing.T) {
	repo := new(MockSettingRepository)
	repo.On("Get", mock.Anything, "home.hero").Return(nil, entity.ErrNotFound)

	handler := NewSettingHandler(repo)

	req := withURLParam(httptest.NewRequest("GET", "/api/settings/home.hero", nil), "key", "home.hero")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp settingResponse
	json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, "home.hero", resp.Key)
	assert.Nil(t, resp.Value)
}

func TestSettingGetExistingKey(t *testing.T) {
	value := "Welcome to the agency"
	repo := new(MockSettingRepository)
	repo.On("Get", mock.Anything, "home.hero").Return(&entity.Setting{Key: "home.hero", Value: &value}, nil)

	handler := NewSettingHandler(repo)

	req := withURLParam(httptest.NewRequest("GET", "/api/settings/home.hero", nil), "key", "home.hero")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp settingResponse
	json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, value, *resp.Value)
}

func TestSettingSet(t *testing.T) {
	repo := new(MockSettingRepository)
	repo.On("Set", mock.Anything, "legal.privacy", "updated text").Return(nil)

	handler := NewSettingHandler(repo)

	body := []byte(`{"value":"updated text"}`)
	req := withURLParam(httptest.NewRequest("PUT", "/api/settings/legal.privacy", bytes.NewReader(body)), "key", "legal.privacy")
	w := httptest.NewRecorder()

	handler.Set(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, "legal.privacy", resp["key"])
	assert.Equal(t, "updated text", resp["value"])
	repo.AssertCalled(t, "Set", mock.Anything, "legal.privacy", "updated text")
}
