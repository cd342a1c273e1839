package service_test

import (
	"context"
	"errors"
	"testing"

	"hackpass/internal/model"
	repoMocks "hackpass/internal/repository/mocks"
	"hackpass/internal/service"
	apperrors "hackpass/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MailerMock struct {
	mock.Mock
}

func (m *MailerMock) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MailerMock) SendQRCode(to, name string, png []byte) error {
	args := m.Called(to, name, png)
	return args.Error(0)
}

func TestRegistrationService_AddHacker(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - ErrInvalidInput", func(t *testing.T) {
		hackerRepo := repoMocks.NewHackerRepositoryMock()
		mailerMock := &MailerMock{}
		svc := service.NewRegistrationService(hackerRepo, mailerMock)

		_, err := svc.AddHacker(ctx, "   ", "jane@x.com")

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		hackerRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - DatabaseError", func(t *testing.T) {
		hackerRepo := repoMocks.NewHackerRepositoryMock()
		mailerMock := &MailerMock{}
		svc := service.NewRegistrationService(hackerRepo, mailerMock)

		hackerRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("duplicate key")).Once()

		_, err := svc.AddHacker(ctx, "Jane Doe", "jane@x.com")

		require.Error(t, err)
		// 主寫入失敗，QR 和寄信整段跳過
		mailerMock.AssertNotCalled(t, "Configured")
		mailerMock.AssertNotCalled(t, "SendQRCode")
	})

	t.Run("Success - EmailNotConfigured", func(t *testing.T) {
		hackerRepo := repoMocks.NewHackerRepositoryMock()
		mailerMock := &MailerMock{}
		svc := service.NewRegistrationService(hackerRepo, mailerMock)

		hackerRepo.On("Create", ctx, mock.Anything).Return(&model.Hacker{FullName: "Jane Doe"}, nil).Once()
		mailerMock.On("Configured").Return(false).Once()

		result, err := svc.AddHacker(ctx, "Jane Doe", "jane@x.com")

		require.NoError(t, err)
		assert.Equal(t, model.StatusSuccess, result.Status)
		assert.Equal(t, "Jane Doe added (email not configured).", result.Message)
		mailerMock.AssertNotCalled(t, "SendQRCode")
	})

	t.Run("Warning - EmailFailed", func(t *testing.T) {
		hackerRepo := repoMocks.NewHackerRepositoryMock()
		mailerMock := &MailerMock{}
		svc := service.NewRegistrationService(hackerRepo, mailerMock)

		hackerRepo.On("Create", ctx, mock.Anything).Return(&model.Hacker{FullName: "Jane Doe"}, nil).Once()
		mailerMock.On("Configured").Return(true).Once()
		mailerMock.On("SendQRCode", "jane@x.com", "Jane Doe", mock.Anything).
			Return(errors.New("smtp timeout")).Once()

		result, err := svc.AddHacker(ctx, "Jane Doe", "jane@x.com")

		// 寄信失敗不回滾，降級成 warning
		require.NoError(t, err)
		assert.Equal(t, model.StatusWarning, result.Status)
		assert.Contains(t, result.Message, "added to database, but email failed")
	})

	t.Run("Success - EmailSent", func(t *testing.T) {
		hackerRepo := repoMocks.NewHackerRepositoryMock()
		mailerMock := &MailerMock{}
		svc := service.NewRegistrationService(hackerRepo, mailerMock)

		var created *model.Hacker
		hackerRepo.On("Create", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*model.Hacker)
			}).
			Return(&model.Hacker{FullName: "Jane Doe"}, nil).Once()
		mailerMock.On("Configured").Return(true).Once()
		mailerMock.On("SendQRCode", "jane@x.com", "Jane Doe", mock.Anything).Return(nil).Once()

		result, err := svc.AddHacker(ctx, "Jane Doe", "jane@x.com")

		require.NoError(t, err)
		assert.Equal(t, model.StatusSuccess, result.Status)
		assert.Equal(t, "Jane Doe added and email sent!", result.Message)

		// 新列的預設值：Accepted、未報到、uuid 已配好
		require.NotNil(t, created)
		assert.Equal(t, model.StatusAccepted, created.Status)
		assert.False(t, created.CheckedIn)
		assert.NotEmpty(t, created.ID)
	})
}

func TestRegistrationService_SearchHackers(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		hackerRepo := repoMocks.NewHackerRepositoryMock()
		svc := service.NewRegistrationService(hackerRepo, &MailerMock{})

		expected := []*model.Hacker{{FullName: "Jane Doe"}}
		hackerRepo.On("SearchAccepted", ctx, "jane", 50).Return(expected, nil).Once()

		hackers, err := svc.SearchHackers(ctx, "  jane  ")

		require.NoError(t, err)
		assert.Equal(t, expected, hackers)
	})
}
