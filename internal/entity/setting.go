package entity

import (
	"context"
	"time"
)

// Setting is one key-value pair of editable site copy (hero text, legal
// pages, contact info) and stored integration credentials.
type Setting struct {
	ID        int       `json:"id"`
	Key       string    `json:"key"`
	Value     *string   `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SettingRepository interface {
	// Get returns ErrNotFound when the key has never been set.
	Get(ctx context.Context, key string) (*Setting, error)
	Set(ctx context.Context, key, value string) error
}
