package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"hackpass/internal/model"
	"hackpass/internal/repository"
	apperrors "hackpass/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// recentActivityLimit 活動動態最多取這麼多筆，distinct 人數也是對
// 這個視窗算的（超過時會低估，既定行為）
const recentActivityLimit = 200

type AttendanceService interface {
	// Log 記錄一次掃描。回傳 success 或 warning（重複掃描），
	// 查無 hacker 或未過閘門則回傳 error。
	Log(ctx context.Context, guestID uuid.UUID, event string) (*model.Result, error)
	// Remove 刪除指定 (hacker, event) 的出席紀錄。不存在視為成功。
	// 即使刪的是 Check-in 紀錄，也不回復 checked_in 旗標（報到視為一次性授予）。
	Remove(ctx context.Context, guestID uuid.UUID, event string) (*model.Result, error)
	EligibleUsers(ctx context.Context, event string) ([]*model.EligibleUser, error)
	Stats(ctx context.Context, event string) (*model.EventStats, error)
	// EventAttendeeCount 全量 distinct 人數。Stats 的 event_count 受
	// recentActivityLimit 視窗截斷，活動頁初次渲染用這個不截斷的值。
	EventAttendeeCount(ctx context.Context, event string) (int, error)
}

type AttendanceServiceImpl struct {
	pool           *pgxpool.Pool
	attendanceRepo repository.AttendanceRepository
	hackerRepo     repository.HackerRepository
}

func NewAttendanceService(
	pool *pgxpool.Pool,
	attendanceRepo repository.AttendanceRepository,
	hackerRepo repository.HackerRepository,
) AttendanceService {
	return &AttendanceServiceImpl{
		pool:           pool,
		attendanceRepo: attendanceRepo,
		hackerRepo:     hackerRepo,
	}
}

func (s *AttendanceServiceImpl) Log(ctx context.Context, guestID uuid.UUID, event string) (*model.Result, error) {
	hacker, err := s.hackerRepo.FindByID(ctx, guestID)
	if err != nil {
		return nil, err
	}

	// 閘門檢查必須在重複檢查之前：未報到的人在分場被掃到，
	// 要告知先去報到，而不是「已記錄過」
	if event != model.CheckInEvent {
		checkedIn, err := s.attendanceRepo.Exists(ctx, guestID, model.CheckInEvent)
		if err != nil {
			return nil, err
		}
		if !checkedIn {
			return nil, &apperrors.CheckInRequiredError{Name: hacker.FullName}
		}
	}

	logged, err := s.attendanceRepo.Exists(ctx, guestID, event)
	if err != nil {
		return nil, err
	}
	if logged {
		return model.Warning(fmt.Sprintf("%s is already logged for %s.", hacker.FullName, event)), nil
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// attendance 先寫：漏掉的 checked_in 可從 attendance 重建，反向不行
	record := &model.Attendance{
		HackerID: guestID,
		Name:     hacker.FullName, // 快照，不用呼叫端給的資料
		Event:    event,
	}
	if _, err := s.attendanceRepo.Create(ctx, tx, record); err != nil {
		return nil, err
	}

	if event == model.CheckInEvent {
		if err := s.hackerRepo.SetCheckedIn(ctx, tx, guestID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return model.Success("Verified: " + hacker.FullName), nil
}

func (s *AttendanceServiceImpl) Remove(ctx context.Context, guestID uuid.UUID, event string) (*model.Result, error) {
	err := s.attendanceRepo.DeleteByHackerAndEvent(ctx, guestID, event)
	if err != nil {
		return nil, err
	}
	return model.Success("Record removed by Admin"), nil
}

func (s *AttendanceServiceImpl) EligibleUsers(ctx context.Context, event string) ([]*model.EligibleUser, error) {
	accepted, err := s.hackerRepo.ListAccepted(ctx)
	if err != nil {
		return nil, err
	}

	// 非主報到活動只列出已通過閘門的人
	if event != model.CheckInEvent {
		ids, err := s.attendanceRepo.CheckedInIDs(ctx)
		if err != nil {
			return nil, err
		}
		checkedIn := make(map[uuid.UUID]struct{}, len(ids))
		for _, id := range ids {
			checkedIn[id] = struct{}{}
		}

		filtered := accepted[:0]
		for _, h := range accepted {
			if _, ok := checkedIn[h.ID]; ok {
				filtered = append(filtered, h)
			}
		}
		accepted = filtered
	}

	users := make([]*model.EligibleUser, 0, len(accepted))
	for _, h := range accepted {
		users = append(users, &model.EligibleUser{
			GuestID:     h.ID,
			DisplayName: formatLastFirst(h.FullName),
		})
	}

	sort.Slice(users, func(i, j int) bool {
		return strings.ToLower(users[i].DisplayName) < strings.ToLower(users[j].DisplayName)
	})

	return users, nil
}

func (s *AttendanceServiceImpl) Stats(ctx context.Context, event string) (*model.EventStats, error) {
	total, err := s.hackerRepo.CountAccepted(ctx)
	if err != nil {
		return nil, err
	}

	here, err := s.attendanceRepo.CountCheckedIn(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.attendanceRepo.RecentByEvent(ctx, event, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	distinct := make(map[uuid.UUID]struct{}, len(recent))
	for _, record := range recent {
		distinct[record.HackerID] = struct{}{}
	}

	return &model.EventStats{
		Here:           here,
		Total:          total,
		EventCount:     len(distinct),
		RecentActivity: recent,
	}, nil
}

func (s *AttendanceServiceImpl) EventAttendeeCount(ctx context.Context, event string) (int, error) {
	return s.attendanceRepo.CountDistinctByEvent(ctx, event)
}

// formatLastFirst "Jane Mary Doe" -> "Mary Doe, Jane"；單一 token 原樣回傳
func formatLastFirst(name string) string {
	parts := strings.Fields(name)
	if len(parts) <= 1 {
		return name
	}
	return strings.Join(parts[1:], " ") + ", " + parts[0]
}
