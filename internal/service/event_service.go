package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"hackpass/internal/model"
	"hackpass/internal/repository"
	apperrors "hackpass/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventService interface {
	List(ctx context.Context) ([]string, error)
	// Search 活動名稱子字串過濾，不分大小寫
	Search(ctx context.Context, query string) ([]string, error)
	Create(ctx context.Context, name string) (*model.Event, error)
	// Delete 需要共享密碼，且拒絕刪除主 Check-in 活動。
	// 先刪該活動的 attendance 再刪 event 本身，避免殘留孤兒紀錄。
	Delete(ctx context.Context, name, password string) error
}

type EventServiceImpl struct {
	pool           *pgxpool.Pool
	eventRepo      repository.EventRepository
	attendanceRepo repository.AttendanceRepository
	deletePassword string
}

func NewEventService(
	pool *pgxpool.Pool,
	eventRepo repository.EventRepository,
	attendanceRepo repository.AttendanceRepository,
	deletePassword string,
) EventService {
	return &EventServiceImpl{
		pool:           pool,
		eventRepo:      eventRepo,
		attendanceRepo: attendanceRepo,
		deletePassword: deletePassword,
	}
}

func (s *EventServiceImpl) List(ctx context.Context) ([]string, error) {
	return s.eventRepo.ListNames(ctx)
}

func (s *EventServiceImpl) Search(ctx context.Context, query string) ([]string, error) {
	names, err := s.eventRepo.ListNames(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return names, nil
	}

	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), query) {
			filtered = append(filtered, name)
		}
	}
	return filtered, nil
}

func (s *EventServiceImpl) Create(ctx context.Context, name string) (*model.Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrInvalidInput
	}

	exists, err := s.eventRepo.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEventExists
	}

	return s.eventRepo.Create(ctx, &model.Event{EventName: name})
}

func (s *EventServiceImpl) Delete(ctx context.Context, name, password string) error {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return apperrors.ErrInvalidInput
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.deletePassword)) != 1 {
		return apperrors.ErrDeletePasswordInvalid
	}

	if name == model.CheckInEvent {
		return apperrors.ErrProtectedEvent
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := s.attendanceRepo.DeleteByEvent(ctx, tx, name); err != nil {
		return err
	}

	if err := s.eventRepo.Delete(ctx, tx, name); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
