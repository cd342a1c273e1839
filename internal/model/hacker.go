package model

import (
	"time"

	"github.com/google/uuid"
)

// HackerStatus 報名審核狀態
type HackerStatus string

const (
	// StatusAccepted 只有 Accepted 的 hacker 會出現在統計與可選名單
	StatusAccepted HackerStatus = "Accepted"
)

// Hacker 參加者。ID 是 QR code 的唯一內容。
type Hacker struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	FullName  string       `json:"full_name" db:"full_name"`
	Email     string       `json:"email" db:"email"`
	Status    HackerStatus `json:"status" db:"status"`
	CheckedIn bool         `json:"checked_in" db:"checked_in"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}

// IsAccepted 檢查是否通過審核
func (h *Hacker) IsAccepted() bool {
	return h.Status == StatusAccepted
}

// EligibleUser 手動補登 UI 用的顯示項目
type EligibleUser struct {
	GuestID     uuid.UUID `json:"guest_id"`
	DisplayName string    `json:"display_name"`
}
