package repository

import (
	"context"
	"strings"

	"hackpass/internal/model"
	apperrors "hackpass/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrganizerRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Organizer, error)
}

type OrganizerRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewOrganizerRepository(pool *pgxpool.Pool) OrganizerRepository {
	return &OrganizerRepositoryImpl{
		pool: pool,
	}
}

// FindByEmail 比對不分大小寫
func (r *OrganizerRepositoryImpl) FindByEmail(ctx context.Context, email string) (*model.Organizer, error) {
	query := `
		SELECT email, name, password, is_admin
		FROM organizers
		WHERE LOWER(email) = $1
	`

	var organizer model.Organizer
	err := r.pool.QueryRow(ctx, query, strings.ToLower(email)).Scan(
		&organizer.Email,
		&organizer.Name,
		&organizer.Password,
		&organizer.IsAdmin,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrganizerNotFound
		}
		return nil, err
	}

	return &organizer, nil
}
