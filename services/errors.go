package services

import "errors"

// Общие ошибки сервисного слоя, используемые в маппинге HTTP.
// Поиск по id не порождает ошибок (не найдено => nil/пустой срез);
// ошибки здесь — про операции, которым нужна существующая сущность
// или валидный ввод.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrClubNotFound   = errors.New("club not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrEventNotFound  = errors.New("event not found")
	ErrChatNotFound   = errors.New("chat not found")

	ErrEventTitleRequired   = errors.New("event title is required")
	ErrEventInvalidType     = errors.New("event type must be training or match")
	ErrEventInvalidDate     = errors.New("event date must be in YYYY-MM-DD format")
	ErrEventInvalidTime     = errors.New("event start time must be in HH:MM format")
	ErrEventInvalidDuration = errors.New("event duration must be positive")

	ErrInvalidAttendanceStatus = errors.New("invalid attendance status")
	ErrPlayerNotOnRoster       = errors.New("player is not on the event team roster")

	ErrNotAMatch = errors.New("event is not a match")

	ErrUnknownRole = errors.New("unknown user role")
)
