package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL exists for tests against a stub server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// FetchPlaceReviews pulls the reviews attached to a Place Details result.
// Credentials are per-call because they may come from the request body or
// from stored settings rather than deployment config.
func (c *Client) FetchPlaceReviews(ctx context.Context, placeID, apiKey string) ([]Review, error) {
	endpoint := fmt.Sprintf(
		"%s/details/json?place_id=%s&fields=reviews,rating,user_ratings_total&key=%s",
		c.baseURL, url.QueryEscape(placeID), url.QueryEscape(apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google places request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("google places returned status %d", resp.StatusCode)
	}

	var details placeDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("google places decode: %w", err)
	}

	reviews := make([]Review, 0, len(details.Result.Reviews))
	for _, r := range details.Result.Reviews {
		reviews = append(reviews, Review{
			Author: r.AuthorName,
			Rating: int(r.Rating),
			Text:   r.Text,
		})
	}
	return reviews, nil
}
