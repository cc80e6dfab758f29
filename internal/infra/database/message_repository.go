package database

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/floobyte/site-api/internal/entity"
)

var messageColumns = []string{
	"id", "from_name", "email", "subject", "message", "is_read", "created_at",
}

type MessageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) List(ctx context.Context) ([]entity.Message, error) {
	rows, err := psql.Select(messageColumns...).
		From("messages").
		OrderBy("created_at DESC").
		RunWith(r.DB).
		QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []entity.Message{}
	for rows.Next() {
		var m entity.Message
		if err := scanMessage(rows, &m); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) Get(ctx context.Context, id int) (*entity.Message, error) {
	row := psql.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		QueryRowContext(ctx)

	var m entity.Message
	if err := scanMessage(row, &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepository) Create(ctx context.Context, msg *entity.Message) error {
	return psql.Insert("messages").
		Columns("from_name", "email", "subject", "message", "is_read").
		Values(msg.FromName, msg.Email, msg.Subject, msg.Message, msg.IsRead).
		Suffix("RETURNING id, created_at").
		RunWith(r.DB).
		QueryRowContext(ctx).
		Scan(&msg.ID, &msg.CreatedAt)
}

// MarkRead flags a message as read and reports whether the row existed.
func (r *MessageRepository) MarkRead(ctx context.Context, id int) (bool, error) {
	res, err := psql.Update("messages").
		Set("is_read", true).
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *MessageRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := psql.Delete("messages").
		Where(sq.Eq{"id": id}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanMessage(row sq.RowScanner, m *entity.Message) error {
	return row.Scan(&m.ID, &m.FromName, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt)
}
