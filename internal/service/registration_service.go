package service

import (
	"context"
	"fmt"
	"strings"

	"hackpass/internal/mailer"
	"hackpass/internal/model"
	"hackpass/internal/qr"
	"hackpass/internal/repository"
	apperrors "hackpass/pkg/app_errors"
	"hackpass/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// hackerSearchLimit 搜尋結果上限，前端是 debounced 的即時搜尋
const hackerSearchLimit = 50

type RegistrationService interface {
	// AddHacker 建立參加者、產生 QR code 並寄送。寄信失敗不回滾資料，
	// 結果降級為 warning。
	AddHacker(ctx context.Context, name, email string) (*model.Result, error)
	SearchHackers(ctx context.Context, query string) ([]*model.Hacker, error)
}

type RegistrationServiceImpl struct {
	hackerRepo repository.HackerRepository
	mailer     mailer.Mailer
}

func NewRegistrationService(hackerRepo repository.HackerRepository, mailer mailer.Mailer) RegistrationService {
	return &RegistrationServiceImpl{
		hackerRepo: hackerRepo,
		mailer:     mailer,
	}
}

func (s *RegistrationServiceImpl) AddHacker(ctx context.Context, name, email string) (*model.Result, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, apperrors.ErrInvalidInput
	}

	hacker := &model.Hacker{
		ID:       uuid.New(),
		FullName: name,
		Email:    email,
		Status:   model.StatusAccepted,
	}

	if _, err := s.hackerRepo.Create(ctx, hacker); err != nil {
		// 主寫入失敗就整個失敗，QR 與寄信一律跳過
		return nil, err
	}

	if !s.mailer.Configured() {
		return model.Success(fmt.Sprintf("%s added (email not configured).", name)), nil
	}

	png, err := qr.GeneratePNG(hacker.ID.String())
	if err != nil {
		return model.Warning(fmt.Sprintf("%s added to database, but email failed: %v", name, err)), nil
	}

	if err := s.mailer.SendQRCode(email, name, png); err != nil {
		return model.Warning(fmt.Sprintf("%s added to database, but email failed: %v", name, err)), nil
	}

	logger.WithComponent("service").Info("hacker registered and emailed",
		zap.String("guest_id", hacker.ID.String()))
	return model.Success(fmt.Sprintf("%s added and email sent!", name)), nil
}

func (s *RegistrationServiceImpl) SearchHackers(ctx context.Context, query string) ([]*model.Hacker, error) {
	return s.hackerRepo.SearchAccepted(ctx, strings.TrimSpace(query), hackerSearchLimit)
}
