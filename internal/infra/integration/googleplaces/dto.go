package googleplaces

// Review is the slice of a Place Details result the sync cares about.
type Review struct {
	Author string
	Rating int
	Text   string
}

type placeDetailsResponse struct {
	Result struct {
		Reviews []placeReview `json:"reviews"`
	} `json:"result"`
	Status string `json:"status"`
}

type placeReview struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
}
