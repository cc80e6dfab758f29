package entity

import (
	"context"
	"time"
)

// Project is a portfolio item.
type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Client      *string   `json:"client"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	LinkURL     *string   `json:"linkUrl"`
	VideoURL    *string   `json:"videoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProjectUpdate struct {
	Title       *string `json:"title"`
	Client      *string `json:"client"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	LinkURL     *string `json:"linkUrl"`
	VideoURL    *string `json:"videoUrl"`
}

type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id int) (*Project, error)
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, id int, upd ProjectUpdate) (*Project, error)
	Delete(ctx context.Context, id int) (bool, error)
}
