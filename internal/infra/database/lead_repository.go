package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/floobyte/site-api/internal/entity"
)

var leadColumns = []string{
	"id", "name", "company", "email", "phone", "services",
	"budget", "details", "source", "status", "created_at", "updated_at",
}

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// List returns every lead, newest first.
func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	rows, err := psql.Select(leadColumns...).
		From("leads").
		OrderBy("created_at DESC").
		RunWith(r.DB).
		QueryContext(ctx)
	if err != nil {
		if isUndefinedTable(err) {
			return []entity.Lead{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var l entity.Lead
		if err := scanLead(rows, &l); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) Get(ctx context.Context, id int) (*entity.Lead, error) {
	row := psql.Select(leadColumns...).
		From("leads").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var l entity.Lead
	if err := scanLead(row, &l); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return psql.Insert("leads").
		Columns("name", "company", "email", "phone", "services", "budget", "details", "source", "status").
		Values(lead.Name, lead.Company, lead.Email, lead.Phone, lead.Services, lead.Budget, lead.Details, lead.Source, lead.Status).
		Suffix("RETURNING id, created_at, updated_at").
		RunWith(r.DB).
		QueryRowContext(ctx).
		Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
}

func (r *LeadRepository) Update(ctx context.Context, id int, upd entity.LeadUpdate) (*entity.Lead, error) {
	q := psql.Update("leads").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if upd.Status != nil {
		q = q.Set("status", *upd.Status)
	}
	if upd.Source != nil {
		q = q.Set("source", *upd.Source)
	}
	if upd.Budget != nil {
		q = q.Set("budget", *upd.Budget)
	}
	if upd.Details != nil {
		q = q.Set("details", *upd.Details)
	}

	row := q.Suffix("RETURNING " + strings.Join(leadColumns, ", ")).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var l entity.Lead
	if err := scanLead(row, &l); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// Delete reports whether a row was removed; zero rows is not an error.
func (r *LeadRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := psql.Delete("leads").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanLead(row sq.RowScanner, l *entity.Lead) error {
	return row.Scan(
		&l.ID, &l.Name, &l.Company, &l.Email, &l.Phone, &l.Services,
		&l.Budget, &l.Details, &l.Source, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
}
