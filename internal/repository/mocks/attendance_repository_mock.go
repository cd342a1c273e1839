package mocks

import (
	"context"

	"hackpass/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type AttendanceRepositoryMock struct {
	mock.Mock
}

func NewAttendanceRepositoryMock() *AttendanceRepositoryMock {
	return &AttendanceRepositoryMock{}
}

func (m *AttendanceRepositoryMock) Create(ctx context.Context, tx pgx.Tx, attendance *model.Attendance) (*model.Attendance, error) {
	args := m.Called(ctx, tx, attendance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attendance), args.Error(1)
}

func (m *AttendanceRepositoryMock) Exists(ctx context.Context, hackerID uuid.UUID, event string) (bool, error) {
	args := m.Called(ctx, hackerID, event)
	return args.Bool(0), args.Error(1)
}

func (m *AttendanceRepositoryMock) CheckedInIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *AttendanceRepositoryMock) CountCheckedIn(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *AttendanceRepositoryMock) CountDistinctByEvent(ctx context.Context, event string) (int, error) {
	args := m.Called(ctx, event)
	return args.Int(0), args.Error(1)
}

func (m *AttendanceRepositoryMock) RecentByEvent(ctx context.Context, event string, limit int) ([]*model.Attendance, error) {
	args := m.Called(ctx, event, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Attendance), args.Error(1)
}

func (m *AttendanceRepositoryMock) DeleteByHackerAndEvent(ctx context.Context, hackerID uuid.UUID, event string) error {
	args := m.Called(ctx, hackerID, event)
	return args.Error(0)
}

func (m *AttendanceRepositoryMock) DeleteByEvent(ctx context.Context, tx pgx.Tx, event string) error {
	args := m.Called(ctx, tx, event)
	return args.Error(0)
}
