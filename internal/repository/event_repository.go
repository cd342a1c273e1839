package repository

import (
	"context"

	"hackpass/internal/model"
	apperrors "hackpass/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	Exists(ctx context.Context, name string) (bool, error)
	ListNames(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, tx pgx.Tx, name string) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (event_name)
		VALUES ($1)
		RETURNING event_name, created_at
	`
	err := r.pool.QueryRow(ctx, query, event.EventName).Scan(
		&event.EventName,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) Exists(ctx context.Context, name string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM events
			WHERE event_name = $1
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, name).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *EventRepositoryImpl) ListNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT event_name
		FROM events
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, name string) error {
	query := `
		DELETE FROM events
		WHERE event_name = $1
	`

	result, err := tx.Exec(ctx, query, name)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
