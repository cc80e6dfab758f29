package entity

import (
	"context"
	"time"
)

// Message is a contact-form submission. The only mutable field is IsRead.
type Message struct {
	ID        int       `json:"id"`
	FromName  string    `json:"fromName"`
	Email     *string   `json:"email"`
	Subject   *string   `json:"subject"`
	Message   *string   `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type MessageRepository interface {
	List(ctx context.Context) ([]Message, error)
	Get(ctx context.Context, id int) (*Message, error)
	Create(ctx context.Context, msg *Message) error
	MarkRead(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}
