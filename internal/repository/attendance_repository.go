package repository

import (
	"context"

	"hackpass/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AttendanceRepository interface {
	Create(ctx context.Context, tx pgx.Tx, attendance *model.Attendance) (*model.Attendance, error)
	Exists(ctx context.Context, hackerID uuid.UUID, event string) (bool, error)
	CheckedInIDs(ctx context.Context) ([]uuid.UUID, error)
	CountCheckedIn(ctx context.Context) (int, error)
	CountDistinctByEvent(ctx context.Context, event string) (int, error)
	RecentByEvent(ctx context.Context, event string, limit int) ([]*model.Attendance, error)
	DeleteByHackerAndEvent(ctx context.Context, hackerID uuid.UUID, event string) error
	DeleteByEvent(ctx context.Context, tx pgx.Tx, event string) error
}

type AttendanceRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAttendanceRepository(pool *pgxpool.Pool) AttendanceRepository {
	return &AttendanceRepositoryImpl{
		pool: pool,
	}
}

func (r *AttendanceRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, attendance *model.Attendance) (*model.Attendance, error) {
	query := `
		INSERT INTO attendance (hacker_id, name, event)
		VALUES ($1, $2, $3)
		RETURNING id, hacker_id, name, event, created_at
	`
	err := tx.QueryRow(ctx, query,
		attendance.HackerID, attendance.Name, attendance.Event,
	).Scan(
		&attendance.ID,
		&attendance.HackerID,
		&attendance.Name,
		&attendance.Event,
		&attendance.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return attendance, nil
}

func (r *AttendanceRepositoryImpl) Exists(ctx context.Context, hackerID uuid.UUID, event string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance
			WHERE hacker_id = $1 AND event = $2
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, hackerID, event).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CheckedInIDs 已通過主 Check-in 的 hacker id 集合，eligible 名單過濾用
func (r *AttendanceRepositoryImpl) CheckedInIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT hacker_id
		FROM attendance
		WHERE event = $1
	`

	rows, err := r.pool.Query(ctx, query, model.CheckInEvent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *AttendanceRepositoryImpl) CountCheckedIn(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(DISTINCT hacker_id)
		FROM attendance
		WHERE event = $1
	`

	var count int
	err := r.pool.QueryRow(ctx, query, model.CheckInEvent).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountDistinctByEvent 全量 distinct 人數，不受 RecentByEvent 的視窗截斷
func (r *AttendanceRepositoryImpl) CountDistinctByEvent(ctx context.Context, event string) (int, error) {
	query := `
		SELECT COUNT(DISTINCT hacker_id)
		FROM attendance
		WHERE event = $1
	`

	var count int
	err := r.pool.QueryRow(ctx, query, event).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// RecentByEvent 取最新 limit 筆。統計頁的 distinct 人數是對這個截斷後的
// 視窗算的，超過 limit 筆原始紀錄時會低估，屬既定行為。
func (r *AttendanceRepositoryImpl) RecentByEvent(ctx context.Context, event string, limit int) ([]*model.Attendance, error) {
	query := `
		SELECT id, hacker_id, name, event, created_at
		FROM attendance
		WHERE event = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, event, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*model.Attendance, 0)
	for rows.Next() {
		var record model.Attendance
		err := rows.Scan(
			&record.ID,
			&record.HackerID,
			&record.Name,
			&record.Event,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, nil
}

// DeleteByHackerAndEvent 刪除不存在的紀錄視為成功的 no-op
func (r *AttendanceRepositoryImpl) DeleteByHackerAndEvent(ctx context.Context, hackerID uuid.UUID, event string) error {
	query := `
		DELETE FROM attendance
		WHERE hacker_id = $1 AND event = $2
	`

	_, err := r.pool.Exec(ctx, query, hackerID, event)
	return err
}

func (r *AttendanceRepositoryImpl) DeleteByEvent(ctx context.Context, tx pgx.Tx, event string) error {
	query := `
		DELETE FROM attendance
		WHERE event = $1
	`

	_, err := tx.Exec(ctx, query, event)
	return err
}
