package trustpilot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchBusinessUnitReviews(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"reviews": [
				{"consumer": {"displayName": "Carol"}, "stars": 5, "text": "Excellent"},
				{"title": "Good value", "rating": 4, "content": "Solid delivery"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	reviews, err := client.FetchBusinessUnitReviews(context.Background(), "bu-1", "token-1")

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, Review{Author: "Carol", Rating: 5, Text: "Excellent"}, reviews[0])
	assert.Equal(t, Review{Author: "Good value", Rating: 4, Text: "Solid delivery"}, reviews[1])
	assert.Equal(t, "/business-units/bu-1/reviews", gotPath)
	assert.Equal(t, "Bearer token-1", gotAuth)
}

func TestFetchBusinessUnitReviewsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.FetchBusinessUnitReviews(context.Background(), "bu-1", "expired")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
