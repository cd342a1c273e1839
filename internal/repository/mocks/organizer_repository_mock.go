package mocks

import (
	"context"

	"hackpass/internal/model"

	"github.com/stretchr/testify/mock"
)

type OrganizerRepositoryMock struct {
	mock.Mock
}

func NewOrganizerRepositoryMock() *OrganizerRepositoryMock {
	return &OrganizerRepositoryMock{}
}

func (m *OrganizerRepositoryMock) FindByEmail(ctx context.Context, email string) (*model.Organizer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organizer), args.Error(1)
}
