package model

import "time"

// CheckInEvent 主報到活動。它是其他活動的閘門，且永遠不可刪除。
const CheckInEvent = "Check-in"

type Event struct {
	EventName string    `json:"event_name" db:"event_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsProtected 檢查是否為不可刪除的主報到活動
func (e *Event) IsProtected() bool {
	return e.EventName == CheckInEvent
}
