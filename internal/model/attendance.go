package model

import (
	"time"

	"github.com/google/uuid"
)

// Attendance 出席紀錄。Name 是掃描當下 full_name 的快照，之後不跟隨改名。
// 紀錄只插入、只整筆刪除，不做 update。
type Attendance struct {
	ID        int       `json:"id" db:"id"`
	HackerID  uuid.UUID `json:"hacker_id" db:"hacker_id"`
	Name      string    `json:"name" db:"name"`
	Event     string    `json:"event" db:"event"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// EventStats 活動即時統計，掃描頁輪詢用
type EventStats struct {
	Here           int           `json:"here"`
	Total          int           `json:"total"`
	EventCount     int           `json:"event_count"`
	RecentActivity []*Attendance `json:"recent_activity"`
}
