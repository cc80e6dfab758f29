package entity

import (
	"context"
	"time"
)

// Post is a blog entry. Slug is unique and used by the public detail page;
// Views counts public reads.
type Post struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Content         *string    `json:"content"`
	Status          string     `json:"status"`
	ImageURL        *string    `json:"imageUrl"`
	Slug            *string    `json:"slug"`
	Excerpt         *string    `json:"excerpt"`
	Author          *string    `json:"author"`
	Category        *string    `json:"category"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	MetaKeywords    *string    `json:"metaKeywords"`
	Views           int        `json:"views"`
	PublishedAt     *time.Time `json:"publishedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type PostUpdate struct {
	Title           *string    `json:"title"`
	Content         *string    `json:"content"`
	Status          *string    `json:"status"`
	ImageURL        *string    `json:"imageUrl"`
	Slug            *string    `json:"slug"`
	Excerpt         *string    `json:"excerpt"`
	Author          *string    `json:"author"`
	Category        *string    `json:"category"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	MetaKeywords    *string    `json:"metaKeywords"`
	PublishedAt     *time.Time `json:"publishedAt"`
}

type PostRepository interface {
	List(ctx context.Context) ([]Post, error)
	Get(ctx context.Context, id int) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	IncrementViews(ctx context.Context, id int) error
	Create(ctx context.Context, post *Post) error
	Update(ctx context.Context, id int, upd PostUpdate) (*Post, error)
	Delete(ctx context.Context, id int) (bool, error)
}
