package services

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Dosada05/club-manager/models"
)

// AttendanceService — агрегатор посещаемости. Все методы чистые:
// базовые записи события и несохранённые правки (overrides) передаются
// явно, никакого амбиентного состояния. Правка накрывает сохранённую
// запись; без обеих статус по умолчанию pending.
type AttendanceService interface {
	// Resolve возвращает действующий статус игрока для события:
	// override >> сохранённая запись >> pending.
	Resolve(event *models.Event, playerID string, overrides map[string]models.AttendanceOverride) models.AttendanceStatus

	// Summarize строит гистограмму статусов по составу.
	// Сумма счётчиков равна размеру состава (после дедупликации).
	Summarize(roster []models.Player, event *models.Event, overrides map[string]models.AttendanceOverride) models.AttendanceSummary

	// MarkAllPending возвращает НОВУЮ карту правок, в которой каждый
	// игрок с действующим статусом pending отмечен present с текущим
	// временем чек-ина. Остальные не трогаются. Исходная карта не
	// мутируется: вызывающий заменяет состояние целиком, одной
	// операцией. Повторное применение ничего не меняет.
	MarkAllPending(roster []models.Player, event *models.Event, overrides map[string]models.AttendanceOverride) map[string]models.AttendanceOverride

	// WindowRate — процент посещаемости по всем событиям в окне
	// [from, to): записи всех подходящих событий сплющиваются, дальше
	// та же формула present+late против общего числа записей. Событие
	// без записей добавляет ноль и в числитель, и в знаменатель.
	WindowRate(events []models.Event, from, to time.Time) int
}

type attendanceService struct {
	clock clockwork.Clock
}

func NewAttendanceService(clock clockwork.Clock) AttendanceService {
	return &attendanceService{clock: clock}
}

func (s *attendanceService) Resolve(event *models.Event, playerID string, overrides map[string]models.AttendanceOverride) models.AttendanceStatus {
	if ov, ok := overrides[playerID]; ok && ov.Status != "" {
		return ov.Status
	}
	if event != nil {
		if rec := event.AttendanceFor(playerID); rec != nil && rec.Status != "" {
			return rec.Status
		}
	}
	return models.AttendancePending
}

func (s *attendanceService) Summarize(roster []models.Player, event *models.Event, overrides map[string]models.AttendanceOverride) models.AttendanceSummary {
	var sum models.AttendanceSummary
	seen := make(map[string]bool, len(roster))
	for i := range roster {
		if seen[roster[i].ID] {
			continue
		}
		seen[roster[i].ID] = true
		sum.Total++
		switch s.Resolve(event, roster[i].ID, overrides) {
		case models.AttendancePresent:
			sum.Present++
		case models.AttendanceLate:
			sum.Late++
		case models.AttendanceAbsent:
			sum.Absent++
		case models.AttendanceExcused:
			sum.Excused++
		default:
			sum.Pending++
		}
	}
	sum.Rate = percentage(sum.Present+sum.Late, sum.Total)
	return sum
}

func (s *attendanceService) MarkAllPending(roster []models.Player, event *models.Event, overrides map[string]models.AttendanceOverride) map[string]models.AttendanceOverride {
	out := make(map[string]models.AttendanceOverride, len(overrides))
	for id, ov := range overrides {
		out[id] = ov
	}
	checkIn := s.clock.Now().Format(models.TimeLayout)
	for i := range roster {
		if s.Resolve(event, roster[i].ID, out) == models.AttendancePending {
			out[roster[i].ID] = models.AttendanceOverride{
				Status:      models.AttendancePresent,
				CheckInTime: checkIn,
			}
		}
	}
	return out
}

func (s *attendanceService) WindowRate(events []models.Event, from, to time.Time) int {
	total, counted := 0, 0
	for i := range events {
		d, ok := parseEventDate(&events[i])
		if !ok || !inWindow(d, from, to) {
			continue
		}
		for _, rec := range events[i].Attendance {
			total++
			if rec.Status == models.AttendancePresent || rec.Status == models.AttendanceLate {
				counted++
			}
		}
	}
	return percentage(counted, total)
}
