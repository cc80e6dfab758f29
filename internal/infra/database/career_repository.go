package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/floobyte/site-api/internal/entity"
)

var careerColumns = []string{
	"id", "title", "type", "department", "location", "experience",
	"description", "requirements", "responsibilities", "benefits",
	"salary", "status", "created_at", "updated_at",
}

type CareerRepository struct {
	DB *sql.DB
}

func NewCareerRepository(db *sql.DB) *CareerRepository {
	return &CareerRepository{DB: db}
}

func (r *CareerRepository) List(ctx context.Context) ([]entity.Career, error) {
	rows, err := psql.Select(careerColumns...).
		From("careers").
		OrderBy("created_at").
		RunWith(r.DB).
		QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	careers := []entity.Career{}
	for rows.Next() {
		var c entity.Career
		if err := scanCareer(rows, &c); err != nil {
			return nil, err
		}
		careers = append(careers, c)
	}
	return careers, rows.Err()
}

func (r *CareerRepository) Get(ctx context.Context, id int) (*entity.Career, error) {
	row := psql.Select(careerColumns...).
		From("careers").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var c entity.Career
	if err := scanCareer(row, &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CareerRepository) Create(ctx context.Context, career *entity.Career) error {
	return psql.Insert("careers").
		Columns("title", "type", "department", "location", "experience", "description",
			"requirements", "responsibilities", "benefits", "salary", "status").
		Values(career.Title, career.Type, career.Department, career.Location, career.Experience,
			career.Description, career.Requirements, career.Responsibilities, career.Benefits,
			career.Salary, career.Status).
		Suffix("RETURNING id, created_at, updated_at").
		RunWith(r.DB).
		QueryRowContext(ctx).
		Scan(&career.ID, &career.CreatedAt, &career.UpdatedAt)
}

func (r *CareerRepository) Update(ctx context.Context, id int, upd entity.CareerUpdate) (*entity.Career, error) {
	q := psql.Update("careers").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if upd.Title != nil {
		q = q.Set("title", *upd.Title)
	}
	if upd.Type != nil {
		q = q.Set("type", *upd.Type)
	}
	if upd.Department != nil {
		q = q.Set("department", *upd.Department)
	}
	if upd.Location != nil {
		q = q.Set("location", *upd.Location)
	}
	if upd.Experience != nil {
		q = q.Set("experience", *upd.Experience)
	}
	if upd.Description != nil {
		q = q.Set("description", *upd.Description)
	}
	if upd.Requirements != nil {
		q = q.Set("requirements", *upd.Requirements)
	}
	if upd.Responsibilities != nil {
		q = q.Set("responsibilities", *upd.Responsibilities)
	}
	if upd.Benefits != nil {
		q = q.Set("benefits", *upd.Benefits)
	}
	if upd.Salary != nil {
		q = q.Set("salary", *upd.Salary)
	}
	if upd.Status != nil {
		q = q.Set("status", *upd.Status)
	}

	row := q.Suffix("RETURNING " + strings.Join(careerColumns, ", ")).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var c entity.Career
	if err := scanCareer(row, &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CareerRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := psql.Delete("careers").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanCareer(row sq.RowScanner, c *entity.Career) error {
	return row.Scan(
		&c.ID, &c.Title, &c.Type, &c.Department, &c.Location, &c.Experience,
		&c.Description, &c.Requirements, &c.Responsibilities, &c.Benefits,
		&c.Salary, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
}
