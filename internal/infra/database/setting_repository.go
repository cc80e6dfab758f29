package database

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/floobyte/site-api/internal/entity"
)

type SettingRepository struct {
	DB *sql.DB
}

func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) Get(ctx context.Context, key string) (*entity.Setting, error) {
	row := psql.Select("id", "key", "value", "updated_at").
		From("settings").
		Where(sq.Eq{"key": key}).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var s entity.Setting
	if err := row.Scan(&s.ID, &s.Key, &s.Value, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Set inserts or overwrites the value for a key.
func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	_, err := psql.Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		RunWith(r.DB).
		ExecContext(ctx)
	return err
}
