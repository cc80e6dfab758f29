package entity

import (
	"context"
	"time"
)

// Lead is a prospective-client submission from the quote request form.
// Submitted content is immutable after creation; admins only move the
// status field and delete rows.
type Lead struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Company   *string   `json:"company"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Services  *string   `json:"services"` // JSON-encoded list of service names
	Budget    *string   `json:"budget"`
	Details   *string   `json:"details"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LeadUpdate carries the admin-editable fields of a lead. Nil fields are
// left untouched.
type LeadUpdate struct {
	Status  *string `json:"status"`
	Source  *string `json:"source"`
	Budget  *string `json:"budget"`
	Details *string `json:"details"`
}

type LeadRepository interface {
	List(ctx context.Context) ([]Lead, error)
	Get(ctx context.Context, id int) (*Lead, error)
	Create(ctx context.Context, lead *Lead) error
	Update(ctx context.Context, id int, upd LeadUpdate) (*Lead, error)
	Delete(ctx context.Context, id int) (bool, error)
}
