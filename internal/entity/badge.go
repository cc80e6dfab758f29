package entity

import (
	"context"
	"time"
)

// Badge is a certification or partner logo shown in the site footer,
// ordered by OrderIndex.
type Badge struct {
	ID         int       `json:"id"`
	Label      string    `json:"label"`
	ImageURL   string    `json:"imageUrl"`
	LinkURL    *string   `json:"linkUrl"`
	Enabled    bool      `json:"enabled"`
	OrderIndex int       `json:"orderIndex"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BadgeUpdate struct {
	Label      *string `json:"label"`
	ImageURL   *string `json:"imageUrl"`
	LinkURL    *string `json:"linkUrl"`
	Enabled    *bool   `json:"enabled"`
	OrderIndex *int    `json:"orderIndex"`
}

type BadgeRepository interface {
	List(ctx context.Context) ([]Badge, error)
	Get(ctx context.Context, id int) (*Badge, error)
	Create(ctx context.Context, badge *Badge) error
	Update(ctx context.Context, id int, upd BadgeUpdate) (*Badge, error)
	Delete(ctx context.Context, id int) (bool, error)
}
