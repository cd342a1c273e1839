package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"hackpass/config"
	"hackpass/internal/repository"
	"hackpass/internal/session"
	apperrors "hackpass/pkg/app_errors"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier 把憑證比對策略藏在介面後面，呼叫端不關心
// 存的是 hash 還是舊的明文
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*session.Identity, error)
}

type AuthService struct {
	organizerRepo repository.OrganizerRepository
	adminEmail    string
	adminPassword string
}

func NewAuthService(organizerRepo repository.OrganizerRepository, auth config.AuthConfig) CredentialVerifier {
	return &AuthService{
		organizerRepo: organizerRepo,
		adminEmail:    strings.ToLower(auth.AdminEmail),
		adminPassword: auth.AdminPassword,
	}
}

// Verify 先查 organizers，再退回設定檔裡的 admin 帳號
func (s *AuthService) Verify(ctx context.Context, email, password string) (*session.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	organizer, err := s.organizerRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrOrganizerNotFound) {
		return nil, err
	}

	if organizer != nil && passwordMatches(organizer.Password, password) {
		return &session.Identity{
			Email:   email,
			Name:    organizer.Name,
			IsAdmin: organizer.IsAdmin,
		}, nil
	}

	if email == s.adminEmail && subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1 {
		return &session.Identity{
			Email:   email,
			Name:    "Admin",
			IsAdmin: true,
		}, nil
	}

	return nil, apperrors.ErrInvalidCredentials
}

// passwordMatches 欄位以 $2 開頭視為 bcrypt hash，其餘走
// 常數時間相等比對（舊資料是明文）
func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
