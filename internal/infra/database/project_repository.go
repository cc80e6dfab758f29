package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/floobyte/site-api/internal/entity"
)

var projectColumns = []string{
	"id", "title", "client", "category", "description",
	"image_url", "link_url", "video_url", "created_at", "updated_at",
}

type ProjectRepository struct {
	DB *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) List(ctx context.Context) ([]entity.Project, error) {
	rows, err := psql.Select(projectColumns...).
		From("projects").
		OrderBy("created_at").
		RunWith(r.DB).
		QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []entity.Project{}
	for rows.Next() {
		var p entity.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) Get(ctx context.Context, id int) (*entity.Project, error) {
	row := psql.Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var p entity.Project
	if err := scanProject(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	return psql.Insert("projects").
		Columns("title", "client", "category", "description", "image_url", "link_url", "video_url").
		Values(project.Title, project.Client, project.Category, project.Description,
			project.ImageURL, project.LinkURL, project.VideoURL).
		Suffix("RETURNING id, created_at, updated_at").
		RunWith(r.DB).
		QueryRowContext(ctx).
		Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *ProjectRepository) Update(ctx context.Context, id int, upd entity.ProjectUpdate) (*entity.Project, error) {
	q := psql.Update("projects").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if upd.Title != nil {
		q = q.Set("title", *upd.Title)
	}
	if upd.Client != nil {
		q = q.Set("client", *upd.Client)
	}
	if upd.Category != nil {
		q = q.Set("category", *upd.Category)
	}
	if upd.Description != nil {
		q = q.Set("description", *upd.Description)
	}
	if upd.ImageURL != nil {
		q = q.Set("image_url", *upd.ImageURL)
	}
	if upd.LinkURL != nil {
		q = q.Set("link_url", *upd.LinkURL)
	}
	if upd.VideoURL != nil {
		q = q.Set("video_url", *upd.VideoURL)
	}

	row := q.Suffix("RETURNING " + strings.Join(projectColumns, ", ")).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var p entity.Project
	if err := scanProject(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := psql.Delete("projects").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanProject(row sq.RowScanner, p *entity.Project) error {
	return row.Scan(
		&p.ID, &p.Title, &p.Client, &p.Category, &p.Description,
		&p.ImageURL, &p.LinkURL, &p.VideoURL, &p.CreatedAt, &p.UpdatedAt,
	)
}
