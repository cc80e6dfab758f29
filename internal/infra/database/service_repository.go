package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/floobyte/site-api/internal/entity"
)

var serviceColumns = []string{
	"id", "title", "description", "category", "icon",
	"image_url", "video_url", "status", "created_at", "updated_at",
}

type ServiceRepository struct {
	DB *sql.DB
}

func NewServiceRepository(db *sql.DB) *ServiceRepository {
	return &ServiceRepository{DB: db}
}

func (r *ServiceRepository) List(ctx context.Context) ([]entity.Service, error) {
	rows, err := psql.Select(serviceColumns...).
		From("services").
		OrderBy("created_at").
		RunWith(r.DB).
		QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []entity.Service{}
	for rows.Next() {
		var s entity.Service
		if err := scanService(rows, &s); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *ServiceRepository) Get(ctx context.Context, id int) (*entity.Service, error) {
	row := psql.Select(serviceColumns...).
		From("services").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var s entity.Service
	if err := scanService(row, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, svc *entity.Service) error {
	return psql.Insert("services").
		Columns("title", "description", "category", "icon", "image_url", "video_url", "status").
		Values(svc.Title, svc.Description, svc.Category, svc.Icon, svc.ImageURL, svc.VideoURL, svc.Status).
		Suffix("RETURNING id, created_at, updated_at").
		RunWith(r.DB).
		QueryRowContext(ctx).
		Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt)
}

func (r *ServiceRepository) Update(ctx context.Context, id int, upd entity.ServiceUpdate) (*entity.Service, error) {
	q := psql.Update("services").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if upd.Title != nil {
		q = q.Set("title", *upd.Title)
	}
	if upd.Description != nil {
		q = q.Set("description", *upd.Description)
	}
	if upd.Category != nil {
		q = q.Set("category", *upd.Category)
	}
	if upd.Icon != nil {
		q = q.Set("icon", *upd.Icon)
	}
	if upd.ImageURL != nil {
		q = q.Set("image_url", *upd.ImageURL)
	}
	if upd.VideoURL != nil {
		q = q.Set("video_url", *upd.VideoURL)
	}
	if upd.Status != nil {
		q = q.Set("status", *upd.Status)
	}

	row := q.Suffix("RETURNING " + strings.Join(serviceColumns, ", ")).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var s entity.Service
	if err := scanService(row, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := psql.Delete("services").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanService(row sq.RowScanner, s *entity.Service) error {
	return row.Scan(
		&s.ID, &s.Title, &s.Description, &s.Category, &s.Icon,
		&s.ImageURL, &s.VideoURL, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
}
