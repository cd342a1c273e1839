package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrHackerNotFound        = errors.New("hacker not found")
	ErrOrganizerNotFound     = errors.New("organizer not found")
	ErrEventNotFound         = errors.New("event not found")
	ErrEventExists           = errors.New("event already exists")
	ErrProtectedEvent        = errors.New("protected event")
	ErrDeletePasswordInvalid = errors.New("invalid delete password")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrSessionNotFound       = errors.New("session not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInternalServerError   = errors.New("internal server error")
)

// CheckInRequiredError 閘門規則：非 Check-in 活動必須先完成主 Check-in。
// 帶 hacker 姓名，讓掃描端能顯示被拒絕的是誰。
type CheckInRequiredError struct {
	Name string
}

func (e *CheckInRequiredError) Error() string {
	return fmt.Sprintf("ACCESS DENIED: %s must go to the main Check-in desk first.", e.Name)
}
