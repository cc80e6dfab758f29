package entity

import (
	"context"
	"time"
)

// Service is an offering shown on the services page.
type Service struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Icon        *string   `json:"icon"`
	ImageURL    *string   `json:"imageUrl"`
	VideoURL    *string   `json:"videoUrl"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ServiceUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Icon        *string `json:"icon"`
	ImageURL    *string `json:"imageUrl"`
	VideoURL    *string `json:"videoUrl"`
	Status      *string `json:"status"`
}

type ServiceRepository interface {
	List(ctx context.Context) ([]Service, error)
	Get(ctx context.Context, id int) (*Service, error)
	Create(ctx context.Context, svc *Service) error
	Update(ctx context.Context, id int, upd ServiceUpdate) (*Service, error)
	Delete(ctx context.Context, id int) (bool, error)
}
