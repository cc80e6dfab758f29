package googleplaces

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPlaceReviews(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"result": {
				"reviews": [
					{"author_name": "Alice", "rating": 5, "text": "Great team"},
					{"author_name": "Bob", "rating": 3.0, "text": ""}
				]
			},
			"status": "OK"
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	reviews, err := client.FetchPlaceReviews(context.Background(), "place-1", "key-1")

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, Review{Author: "Alice", Rating: 5, Text: "Great team"}, reviews[0])
	assert.Equal(t, Review{Author: "Bob", Rating: 3, Text: ""}, reviews[1])
	assert.Equal(t, "/details/json", gotPath)
	assert.Contains(t, gotQuery, "place_id=place-1")
	assert.Contains(t, gotQuery, "key=key-1")
	assert.Contains(t, gotQuery, "fields=reviews")
}

func TestFetchPlaceReviewsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.FetchPlaceReviews(context.Background(), "place-1", "bad-key")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestFetchPlaceReviewsEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": {}, "status": "OK"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	reviews, err := client.FetchPlaceReviews(context.Background(), "place-1", "key-1")

	assert.NoError(t, err)
	assert.Empty(t, reviews)
}
