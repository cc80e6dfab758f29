package entity

import (
	"context"
	"time"
)

// Application is a job-candidate submission against a career posting or a
// general interest area. PositionID is a weak reference to Career.ID: it is
// never enforced and deleting a career does not cascade.
type Application struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	ResumeURL    *string   `json:"resumeUrl"`
	CoverLetter  *string   `json:"coverLetter"`
	PositionID   *int      `json:"positionId"`
	InterestArea *string   `json:"interestArea"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ApplicationRepository interface {
	List(ctx context.Context) ([]Application, error)
	Get(ctx context.Context, id int) (*Application, error)
	Create(ctx context.Context, app *Application) error
	Delete(ctx context.Context, id int) (bool, error)
}
