package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/floobyte/site-api/internal/entity"
)

var badgeColumns = []string{
	"id", "label", "image_url", "link_url", "enabled", "order_index",
	"created_at", "updated_at",
}

type BadgeRepository struct {
	DB *sql.DB
}

func NewBadgeRepository(db *sql.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

// List returns badges in display order. A missing table degrades to an
// empty list so the public site keeps rendering.
func (r *BadgeRepository) List(ctx context.Context) ([]entity.Badge, error) {
	rows, err := psql.Select(badgeColumns...).
		From("badges").
		OrderBy("order_index", "id").
		RunWith(r.DB).
		QueryContext(ctx)
	if err != nil {
		if isUndefinedTable(err) {
			return []entity.Badge{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	badges := []entity.Badge{}
	for rows.Next() {
		var b entity.Badge
		if err := scanBadge(rows, &b); err != nil {
			return nil, err
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}

func (r *BadgeRepository) Get(ctx context.Context, id int) (*entity.Badge, error) {
	row := psql.Select(badgeColumns...).
		From("badges").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var b entity.Badge
	if err := scanBadge(row, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BadgeRepository) Create(ctx context.Context, badge *entity.Badge) error {
	return psql.Insert("badges").
		Columns("label", "image_url", "link_url", "enabled", "order_index").
		Values(badge.Label, badge.ImageURL, badge.LinkURL, badge.Enabled, badge.OrderIndex).
		Suffix("RETURNING id, created_at, updated_at").
		RunWith(r.DB).
		QueryRowContext(ctx).
		Scan(&badge.ID, &badge.CreatedAt, &badge.UpdatedAt)
}

func (r *BadgeRepository) Update(ctx context.Context, id int, upd entity.BadgeUpdate) (*entity.Badge, error) {
	q := psql.Update("badges").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if upd.Label != nil {
		q = q.Set("label", *upd.Label)
	}
	if upd.ImageURL != nil {
		q = q.Set("image_url", *upd.ImageURL)
	}
	if upd.LinkURL != nil {
		q = q.Set("link_url", *upd.LinkURL)
	}
	if upd.Enabled != nil {
		q = q.Set("enabled", *upd.Enabled)
	}
	if upd.OrderIndex != nil {
		q = q.Set("order_index", *upd.OrderIndex)
	}

	row := q.Suffix("RETURNING " + strings.Join(badgeColumns, ", ")).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var b entity.Badge
	if err := scanBadge(row, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BadgeRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := psql.Delete("badges").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanBadge(row sq.RowScanner, b *entity.Badge) error {
	return row.Scan(
		&b.ID, &b.Label, &b.ImageURL, &b.LinkURL, &b.Enabled, &b.OrderIndex,
		&b.CreatedAt, &b.UpdatedAt,
	)
}
