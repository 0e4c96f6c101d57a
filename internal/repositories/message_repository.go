package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/models"
	"portfolio-api/internal/validation"
)

// MessageFilter is the allow-list of recognized query filters for messages.
type MessageFilter struct {
	IsRead *bool
}

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

const messageColumns = `id, name, email, subject, body, is_read, replied, created_at, updated_at`

// List returns messages, newest first.
func (r *MessageRepository) List(ctx context.Context, filter MessageFilter) ([]models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages`
	var args []any

	if filter.IsRead != nil {
		query += " WHERE is_read = $1"
		args = append(args, *filter.IsRead)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := scanMessage(rows, &m); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`

	var m models.Message
	err := scanMessage(r.pool.QueryRow(ctx, query, id), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create inserts the message. Constraints are re-checked here so invalid data
// is rejected even when the request-layer check is bypassed.
func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	if err := validation.Struct(msg); err != nil {
		return err
	}

	query := `
		INSERT INTO messages (id, name, email, subject, body, is_read, replied)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Body,
		msg.IsRead,
		msg.Replied,
	).Scan(&msg.CreatedAt, &msg.UpdatedAt)
}

// MarkRead flips is_read to true and returns the updated record. Already-read
// messages are returned unchanged, so the operation is idempotent.
func (r *MessageRepository) MarkRead(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	query := `
		UPDATE messages
		SET is_read = TRUE, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + messageColumns

	var m models.Message
	err := scanMessage(r.pool.QueryRow(ctx, query, id), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMessage(row pgx.Row, m *models.Message) error {
	return row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Subject,
		&m.Body,
		&m.IsRead,
		&m.Replied,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
}
