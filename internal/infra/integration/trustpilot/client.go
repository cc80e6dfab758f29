package trustpilot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.trustpilot.com/v1"

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

// FetchBusinessUnitReviews pulls the public reviews of one business unit.
func (c *Client) FetchBusinessUnitReviews(ctx context.Context, businessUnitID, accessToken string) ([]Review, error) {
	endpoint := fmt.Sprintf("%s/business-units/%s/reviews", c.baseURL, url.PathEscape(businessUnitID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trustpilot request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("trustpilot returned status %d", resp.StatusCode)
	}

	var payload reviewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("trustpilot decode: %w", err)
	}

	reviews := make([]Review, 0, len(payload.Reviews))
	for _, r := range payload.Reviews {
		author := r.Consumer.DisplayName
		if author == "" {
			author = r.Title
		}
		rating := r.Stars
		if rating == 0 {
			rating = r.Rating
		}
		text := r.Text
		if text == "" {
			text = r.Content
		}
		reviews = append(reviews, Review{Author: author, Rating: rating, Text: text})
	}
	return reviews, nil
}
