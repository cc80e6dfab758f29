package entity

import (
	"context"
	"time"
)

// Review is a customer testimonial, either entered by an admin
// (source "Internal") or pulled in by the review sync ("Google",
// "Trustpilot").
type Review struct {
	ID        int       `json:"id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Text      *string   `json:"text"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewRepository interface {
	List(ctx context.Context) ([]Review, error)
	Create(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id int) (bool, error)
}
