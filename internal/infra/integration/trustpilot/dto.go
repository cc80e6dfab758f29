package trustpilot

// Review is the subset of a Trustpilot business-unit review the sync maps.
type Review struct {
	Author string
	Rating int
	Text   string
}

type reviewsResponse struct {
	Reviews []businessUnitReview `json:"reviews"`
}

// Trustpilot has shipped both naming schemes; take whichever is present.
type businessUnitReview struct {
	Consumer struct {
		DisplayName string `json:"displayName"`
	} `json:"consumer"`
	Title   string `json:"title"`
	Stars   int    `json:"stars"`
	Rating  int    `json:"rating"`
	Text    string `json:"text"`
	Content string `json:"content"`
}
