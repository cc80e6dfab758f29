package database

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/floobyte/site-api/internal/entity"
)

var applicationColumns = []string{
	"id", "name", "email", "phone", "resume_url", "cover_letter",
	"position_id", "interest_area", "status", "created_at",
}

type ApplicationRepository struct {
	DB *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) List(ctx context.Context) ([]entity.Application, error) {
	rows, err := psql.Select(applicationColumns...).
		From("applications").
		OrderBy("created_at DESC").
		RunWith(r.DB).
		QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []entity.Application{}
	for rows.Next() {
		var a entity.Application
		if err := scanApplication(rows, &a); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepository) Get(ctx context.Context, id int) (*entity.Application, error) {
	row := psql.Select(applicationColumns...).
		From("applications").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var a entity.Application
	if err := scanApplication(row, &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, app *entity.Application) error {
	return psql.Insert("applications").
		Columns("name", "email", "phone", "resume_url", "cover_letter",
			"position_id", "interest_area", "status").
		Values(app.Name, app.Email, app.Phone, app.ResumeURL, app.CoverLetter,
			app.PositionID, app.InterestArea, app.Status).
		Suffix("RETURNING id, created_at").
		RunWith(r.DB).
		QueryRowContext(ctx).
		Scan(&app.ID, &app.CreatedAt)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := psql.Delete("applications").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanApplication(row sq.RowScanner, a *entity.Application) error {
	return row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.ResumeURL, &a.CoverLetter,
		&a.PositionID, &a.InterestArea, &a.Status, &a.CreatedAt,
	)
}
