package entity

import (
	"context"
	"time"
)

// Career is an internally posted job or internship listing. Applications
// reference it weakly through PositionID.
type Career struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	Type             string    `json:"type"` // Vacancy, Internship, Full-time, Part-time, Contract
	Department       *string   `json:"department"`
	Location         *string   `json:"location"`
	Experience       *string   `json:"experience"`
	Description      *string   `json:"description"`
	Requirements     *string   `json:"requirements"`
	Responsibilities *string   `json:"responsibilities"`
	Benefits         *string   `json:"benefits"`
	Salary           *string   `json:"salary"`
	Status           string    `json:"status"` // Open or Closed
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type CareerUpdate struct {
	Title            *string `json:"title"`
	Type             *string `json:"type"`
	Department       *string `json:"department"`
	Location         *string `json:"location"`
	Experience       *string `json:"experience"`
	Description      *string `json:"description"`
	Requirements     *string `json:"requirements"`
	Responsibilities *string `json:"responsibilities"`
	Benefits         *string `json:"benefits"`
	Salary           *string `json:"salary"`
	Status           *string `json:"status"`
}

type CareerRepository interface {
	List(ctx context.Context) ([]Career, error)
	Get(ctx context.Context, id int) (*Career, error)
	Create(ctx context.Context, career *Career) error
	Update(ctx context.Context, id int, upd CareerUpdate) (*Career, error)
	Delete(ctx context.Context, id int) (bool, error)
}
