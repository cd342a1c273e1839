package repository

import (
	"context"

	"hackpass/internal/model"
	apperrors "hackpass/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HackerRepository interface {
	Create(ctx context.Context, hacker *model.Hacker) (*model.Hacker, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Hacker, error)
	ListAccepted(ctx context.Context) ([]*model.Hacker, error)
	SearchAccepted(ctx context.Context, query string, limit int) ([]*model.Hacker, error)
	CountAccepted(ctx context.Context) (int, error)
	SetCheckedIn(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type HackerRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewHackerRepository(pool *pgxpool.Pool) HackerRepository {
	return &HackerRepositoryImpl{
		pool: pool,
	}
}

func (r *HackerRepositoryImpl) Create(ctx context.Context, hacker *model.Hacker) (*model.Hacker, error) {
	query := `
		INSERT INTO hackers (id, full_name, email, status, checked_in)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, full_name, email, status, checked_in, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		hacker.ID, hacker.FullName, hacker.Email, hacker.Status, hacker.CheckedIn,
	).Scan(
		&hacker.ID,
		&hacker.FullName,
		&hacker.Email,
		&hacker.Status,
		&hacker.CheckedIn,
		&hacker.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return hacker, nil
}

func (r *HackerRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Hacker, error) {
	query := `
		SELECT id, full_name, email, status, checked_in, created_at
		FROM hackers
		WHERE id = $1
	`

	var hacker model.Hacker
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&hacker.ID,
		&hacker.FullName,
		&hacker.Email,
		&hacker.Status,
		&hacker.CheckedIn,
		&hacker.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrHackerNotFound
		}
		return nil, err
	}

	return &hacker, nil
}

func (r *HackerRepositoryImpl) ListAccepted(ctx context.Context) ([]*model.Hacker, error) {
	query := `
		SELECT id, full_name, email, status, checked_in, created_at
		FROM hackers
		WHERE status = $1
	`

	rows, err := r.pool.Query(ctx, query, model.StatusAccepted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHackers(rows)
}

func (r *HackerRepositoryImpl) SearchAccepted(ctx context.Context, query string, limit int) ([]*model.Hacker, error) {
	sql := `
		SELECT id, full_name, email, status, checked_in, created_at
		FROM hackers
		WHERE status = $1
	`
	args := []interface{}{model.StatusAccepted}

	if query != "" {
		sql += ` AND full_name ILIKE $2 ORDER BY full_name LIMIT $3`
		args = append(args, "%"+query+"%", limit)
	} else {
		sql += ` ORDER BY full_name LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHackers(rows)
}

func (r *HackerRepositoryImpl) CountAccepted(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM hackers
		WHERE status = $1
	`

	var count int
	err := r.pool.QueryRow(ctx, query, model.StatusAccepted).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// SetCheckedIn 在主 Check-in 首次記錄時翻轉旗標，必須和 attendance 插入同一交易
func (r *HackerRepositoryImpl) SetCheckedIn(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `
		UPDATE hackers
		SET checked_in = TRUE
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrHackerNotFound
	}

	return nil
}

func scanHackers(rows pgx.Rows) ([]*model.Hacker, error) {
	hackers := make([]*model.Hacker, 0)
	for rows.Next() {
		var hacker model.Hacker
		err := rows.Scan(
			&hacker.ID,
			&hacker.FullName,
			&hacker.Email,
			&hacker.Status,
			&hacker.CheckedIn,
			&hacker.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		hackers = append(hackers, &hacker)
	}
	return hackers, nil
}
