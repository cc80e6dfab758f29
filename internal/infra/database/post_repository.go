package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/floobyte/site-api/internal/entity"
)

var postColumns = []string{
	"id", "title", "content", "status", "image_url", "slug", "excerpt",
	"author", "category", "meta_title", "meta_description", "meta_keywords",
	"views", "published_at", "created_at", "updated_at",
}

type PostRepository struct {
	DB *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{DB: db}
}

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	rows, err := psql.Select(postColumns...).
		From("posts").
		OrderBy("created_at").
		RunWith(r.DB).
		QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []entity.Post{}
	for rows.Next() {
		var p entity.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Get(ctx context.Context, id int) (*entity.Post, error) {
	return r.getWhere(ctx, sq.Eq{"id": id})
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	return r.getWhere(ctx, sq.Eq{"slug": slug})
}

func (r *PostRepository) getWhere(ctx context.Context, pred sq.Eq) (*entity.Post, error) {
	row := psql.Select(postColumns...).
		From("posts").
		Where(pred).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var p entity.Post
	if err := scanPost(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) IncrementViews(ctx context.Context, id int) error {
	_, err := psql.Update("posts").
		Set("views", sq.Expr("views + 1")).
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		ExecContext(ctx)
	return err
}

func (r *PostRepository) Create(ctx context.Context, post *entity.Post) error {
	return psql.Insert("posts").
		Columns("title", "content", "status", "image_url", "slug", "excerpt",
			"author", "category", "meta_title", "meta_description", "meta_keywords", "published_at").
		Values(post.Title, post.Content, post.Status, post.ImageURL, post.Slug, post.Excerpt,
			post.Author, post.Category, post.MetaTitle, post.MetaDescription, post.MetaKeywords, post.PublishedAt).
		Suffix("RETURNING id, views, created_at, updated_at").
		RunWith(r.DB).
		QueryRowContext(ctx).
		Scan(&post.ID, &post.Views, &post.CreatedAt, &post.UpdatedAt)
}

func (r *PostRepository) Update(ctx context.Context, id int, upd entity.PostUpdate) (*entity.Post, error) {
	q := psql.Update("posts").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if upd.Title != nil {
		q = q.Set("title", *upd.Title)
	}
	if upd.Content != nil {
		q = q.Set("content", *upd.Content)
	}
	if upd.Status != nil {
		q = q.Set("status", *upd.Status)
	}
	if upd.ImageURL != nil {
		q = q.Set("image_url", *upd.ImageURL)
	}
	if upd.Slug != nil {
		q = q.Set("slug", *upd.Slug)
	}
	if upd.Excerpt != nil {
		q = q.Set("excerpt", *upd.Excerpt)
	}
	if upd.Author != nil {
		q = q.Set("author", *upd.Author)
	}
	if upd.Category != nil {
		q = q.Set("category", *upd.Category)
	}
	if upd.MetaTitle != nil {
		q = q.Set("meta_title", *upd.MetaTitle)
	}
	if upd.MetaDescription != nil {
		q = q.Set("meta_description", *upd.MetaDescription)
	}
	if upd.MetaKeywords != nil {
		q = q.Set("meta_keywords", *upd.MetaKeywords)
	}
	if upd.PublishedAt != nil {
		q = q.Set("published_at", *upd.PublishedAt)
	}

	row := q.Suffix("RETURNING " + strings.Join(postColumns, ", ")).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var p entity.Post
	if err := scanPost(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := psql.Delete("posts").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanPost(row sq.RowScanner, p *entity.Post) error {
	return row.Scan(
		&p.ID, &p.Title, &p.Content, &p.Status, &p.ImageURL, &p.Slug, &p.Excerpt,
		&p.Author, &p.Category, &p.MetaTitle, &p.MetaDescription, &p.MetaKeywords,
		&p.Views, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
}
