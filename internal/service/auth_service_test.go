package service_test

import (
	"context"
	"testing"
	"time"

	"hackpass/config"
	"hackpass/internal/model"
	repoMocks "hackpass/internal/repository/mocks"
	"hackpass/internal/service"
	apperrors "hackpass/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AdminEmail:    "Admin@HackPass.test",
		AdminPassword: "super-secret",
		SessionTTL:    time.Hour,
	}
}

func TestAuthService_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - PlaintextOrganizer", func(t *testing.T) {
		organizerRepo := repoMocks.NewOrganizerRepositoryMock()
		verifier := service.NewAuthService(organizerRepo, testAuthConfig())

		organizerRepo.On("FindByEmail", ctx, "jane@x.com").
			Return(&model.Organizer{Email: "jane@x.com", Name: "Jane", Password: "pw123", IsAdmin: false}, nil).Once()

		identity, err := verifier.Verify(ctx, "  Jane@X.com ", "pw123")

		require.NoError(t, err)
		assert.Equal(t, "jane@x.com", identity.Email)
		assert.Equal(t, "Jane", identity.Name)
		assert.False(t, identity.IsAdmin)
	})

	t.Run("Success - BcryptOrganizer", func(t *testing.T) {
		organizerRepo := repoMocks.NewOrganizerRepositoryMock()
		verifier := service.NewAuthService(organizerRepo, testAuthConfig())

		hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
		require.NoError(t, err)

		organizerRepo.On("FindByEmail", ctx, "jane@x.com").
			Return(&model.Organizer{Email: "jane@x.com", Name: "Jane", Password: string(hash), IsAdmin: true}, nil).Once()

		identity, err := verifier.Verify(ctx, "jane@x.com", "pw123")

		require.NoError(t, err)
		assert.True(t, identity.IsAdmin)
	})

	t.Run("Success - AdminFallback", func(t *testing.T) {
		organizerRepo := repoMocks.NewOrganizerRepositoryMock()
		verifier := service.NewAuthService(organizerRepo, testAuthConfig())

		organizerRepo.On("FindByEmail", ctx, "admin@hackpass.test").
			Return(nil, apperrors.ErrOrganizerNotFound).Once()

		identity, err := verifier.Verify(ctx, "admin@hackpass.test", "super-secret")

		require.NoError(t, err)
		assert.Equal(t, "Admin", identity.Name)
		assert.True(t, identity.IsAdmin)
	})

	t.Run("Failed - ErrInvalidCredentials", func(t *testing.T) {
		organizerRepo := repoMocks.NewOrganizerRepositoryMock()
		verifier := service.NewAuthService(organizerRepo, testAuthConfig())

		organizerRepo.On("FindByEmail", ctx, "jane@x.com").
			Return(&model.Organizer{Email: "jane@x.com", Name: "Jane", Password: "pw123"}, nil).Once()

		_, err := verifier.Verify(ctx, "jane@x.com", "wrong")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("Failed - UnknownEmail", func(t *testing.T) {
		organizerRepo := repoMocks.NewOrganizerRepositoryMock()
		verifier := service.NewAuthService(organizerRepo, testAuthConfig())

		organizerRepo.On("FindByEmail", ctx, "ghost@x.com").
			Return(nil, apperrors.ErrOrganizerNotFound).Once()

		_, err := verifier.Verify(ctx, "ghost@x.com", "pw123")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
