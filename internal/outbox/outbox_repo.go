package outbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateEvent(ctx context.Context, eventType string, payload json.RawMessage) error
	ListPending(ctx context.Context, limit int32) ([]Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
}

type outboxRepository struct {
	db dbtx
}

func NewRepository(db *sql.DB) Repository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) Repository {
	return &outboxRepository{db: tx}
}

func (r *outboxRepository) CreateEvent(
	ctx context.Context,
	eventType string,
	payload json.RawMessage,
) error {
	query := `INSERT INTO outbox_events (id, event_type, payload, status, created_at)
	          VALUES ($1, $2, $3, $4, NOW())`

	_, err := r.db.ExecContext(ctx, query, uuid.New(), eventType, payload, StatusPending)
	if err != nil {
		return fmt.Errorf("insert outbox event: %w", err)
	}
	return nil
}

func (r *outboxRepository) ListPending(
	ctx context.Context,
	limit int32,
) ([]Event, error) {
	query := `SELECT id, event_type, payload, status, created_at
	          FROM outbox_events WHERE status = $1 ORDER BY created_at ASC LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, StatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("query pending outbox events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.EventType, &e.Payload, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outbox event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("outbox row iteration: %w", err)
	}
	return events, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE outbox_events SET status = $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, StatusSent, id)
	if err != nil {
		return fmt.Errorf("mark outbox event sent: %w", err)
	}
	return nil
}
