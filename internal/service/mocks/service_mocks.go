package mocks

import (
	"context"

	"hackpass/internal/model"
	"hackpass/internal/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AttendanceServiceMock struct {
	mock.Mock
}

func NewAttendanceServiceMock() *AttendanceServiceMock {
	return &AttendanceServiceMock{}
}

func (m *AttendanceServiceMock) Log(ctx context.Context, guestID uuid.UUID, event string) (*model.Result, error) {
	args := m.Called(ctx, guestID, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *AttendanceServiceMock) Remove(ctx context.Context, guestID uuid.UUID, event string) (*model.Result, error) {
	args := m.Called(ctx, guestID, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *AttendanceServiceMock) EligibleUsers(ctx context.Context, event string) ([]*model.EligibleUser, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.EligibleUser), args.Error(1)
}

func (m *AttendanceServiceMock) Stats(ctx context.Context, event string) (*model.EventStats, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventStats), args.Error(1)
}

func (m *AttendanceServiceMock) EventAttendeeCount(ctx context.Context, event string) (int, error) {
	args := m.Called(ctx, event)
	return args.Int(0), args.Error(1)
}

type RegistrationServiceMock struct {
	mock.Mock
}

func NewRegistrationServiceMock() *RegistrationServiceMock {
	return &RegistrationServiceMock{}
}

func (m *RegistrationServiceMock) AddHacker(ctx context.Context, name, email string) (*model.Result, error) {
	args := m.Called(ctx, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *RegistrationServiceMock) SearchHackers(ctx context.Context, query string) ([]*model.Hacker, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Hacker), args.Error(1)
}

type EventServiceMock struct {
	mock.Mock
}

func NewEventServiceMock() *EventServiceMock {
	return &EventServiceMock{}
}

func (m *EventServiceMock) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *EventServiceMock) Search(ctx context.Context, query string) ([]string, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *EventServiceMock) Create(ctx context.Context, name string) (*model.Event, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) Delete(ctx context.Context, name, password string) error {
	args := m.Called(ctx, name, password)
	return args.Error(0)
}

type CredentialVerifierMock struct {
	mock.Mock
}

func NewCredentialVerifierMock() *CredentialVerifierMock {
	return &CredentialVerifierMock{}
}

func (m *CredentialVerifierMock) Verify(ctx context.Context, email, password string) (*session.Identity, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Identity), args.Error(1)
}
