package database

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/floobyte/site-api/internal/entity"
)

var reviewColumns = []string{"id", "author", "rating", "text", "source", "created_at"}

type ReviewRepository struct {
	DB *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) List(ctx context.Context) ([]entity.Review, error) {
	rows, err := psql.Select(reviewColumns...).
		From("reviews").
		OrderBy("created_at DESC").
		RunWith(r.DB).
		QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []entity.Review{}
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.Author, &rv.Rating, &rv.Text, &rv.Source, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return psql.Insert("reviews").
		Columns("author", "rating", "text", "source").
		Values(review.Author, review.Rating, review.Text, review.Source).
		Suffix("RETURNING id, created_at").
		RunWith(r.DB).
		QueryRowContext(ctx).
		Scan(&review.ID, &review.CreatedAt)
}

func (r *ReviewRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := psql.Delete("reviews").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
