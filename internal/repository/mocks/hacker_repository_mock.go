package mocks

import (
	"context"

	"hackpass/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type HackerRepositoryMock struct {
	mock.Mock
}

func NewHackerRepositoryMock() *HackerRepositoryMock {
	return &HackerRepositoryMock{}
}

func (m *HackerRepositoryMock) Create(ctx context.Context, hacker *model.Hacker) (*model.Hacker, error) {
	args := m.Called(ctx, hacker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hacker), args.Error(1)
}

func (m *HackerRepositoryMock) FindByID(ctx context.Context, id uuid.UUID) (*model.Hacker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hacker), args.Error(1)
}

func (m *HackerRepositoryMock) ListAccepted(ctx context.Context) ([]*model.Hacker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Hacker), args.Error(1)
}

func (m *HackerRepositoryMock) SearchAccepted(ctx context.Context, query string, limit int) ([]*model.Hacker, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Hacker), args.Error(1)
}

func (m *HackerRepositoryMock) CountAccepted(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *HackerRepositoryMock) SetCheckedIn(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}
