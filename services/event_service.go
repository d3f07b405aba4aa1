package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/Dosada05/club-manager/live"
	"github.com/Dosada05/club-manager/models"
	"github.com/Dosada05/club-manager/store"
)

type CreateEventInput struct {
	Type        models.EventType `json:"type"`
	Title       string           `json:"title"`
	Date        string           `json:"date"`
	StartTime   string           `json:"start_time"`
	DurationMin int              `json:"duration_min"`
	Location    string           `json:"location"`
	TeamID      string           `json:"team_id"`
	Notes       string           `json:"notes"`
	// Только для матчей.
	Opponent string `json:"opponent"`
	Home     bool   `json:"home"`
}

type SubmitResultInput struct {
	Score         models.Score          `json:"score"`
	Lineup        []string              `json:"lineup"`
	Substitutions []models.Substitution `json:"substitutions"`
	GoalScorers   []models.GoalScorer   `json:"goal_scorers"`
	Cards         []models.Card         `json:"cards"`
}

// EventService — жизненный цикл события: создание тренером, отметка
// посещаемости, отправка результата матча. Удаления нет: отмена
// события в этой модели данных — no-op.
type EventService interface {
	CreateEvent(ctx context.Context, createdBy string, input CreateEventInput) (*models.Event, error)

	// SaveAttendance материализует карту правок в сохранённые записи.
	// Повторная отметка перезаписывает запись той же пары
	// (event, player), история не накапливается.
	SaveAttendance(ctx context.Context, eventID, markedBy string, marks map[string]models.AttendanceOverride) (*models.Event, error)

	// MarkAllPendingPresent отмечает present всех игроков с действующим
	// статусом pending, одним апсертом. Игроки с любым другим статусом
	// не трогаются; повторный вызов ничего не меняет.
	MarkAllPendingPresent(ctx context.Context, eventID, markedBy string) (*models.Event, error)

	// SubmitResult записывает счёт и выводит result из него:
	// team>opponent => win, team<opponent => loss, иначе draw.
	SubmitResult(ctx context.Context, eventID string, input SubmitResultInput) (*models.Event, error)
}

type eventService struct {
	store      *store.Store
	attendance AttendanceService
	hub        *live.Hub
	clock      clockwork.Clock
}

func NewEventService(st *store.Store, attendance AttendanceService, hub *live.Hub, clock clockwork.Clock) EventService {
	return &eventService{store: st, attendance: attendance, hub: hub, clock: clock}
}

func (s *eventService) CreateEvent(_ context.Context, createdBy string, input CreateEventInput) (*models.Event, error) {
	if input.Type != models.EventTraining && input.Type != models.EventMatch {
		return nil, ErrEventInvalidType
	}
	if input.Title == "" {
		return nil, ErrEventTitleRequired
	}
	if _, err := time.Parse(models.DateLayout, input.Date); err != nil {
		return nil, ErrEventInvalidDate
	}
	if _, err := time.Parse(models.TimeLayout, input.StartTime); err != nil {
		return nil, ErrEventInvalidTime
	}
	if input.DurationMin <= 0 {
		return nil, ErrEventInvalidDuration
	}
	team := s.store.TeamByID(input.TeamID)
	if team == nil {
		return nil, ErrTeamNotFound
	}

	event := models.Event{
		ID:          uuid.NewString(),
		Type:        input.Type,
		Title:       input.Title,
		Date:        input.Date,
		StartTime:   input.StartTime,
		DurationMin: input.DurationMin,
		Location:    input.Location,
		TeamID:      team.ID,
		ClubID:      team.ClubID,
		CreatedBy:   createdBy,
		Notes:       input.Notes,
		Attendance:  []models.AttendanceRecord{},
	}
	if input.Type == models.EventMatch {
		event.MatchDetails = &models.MatchDetails{
			Opponent: input.Opponent,
			Home:     input.Home,
		}
	}

	created := s.store.AddEvent(event)
	if s.hub != nil {
		s.hub.BroadcastToTeam(team.ID, live.Message{Type: live.MessageEventCreated, Payload: created})
	}
	return &created, nil
}

func (s *eventService) SaveAttendance(_ context.Context, eventID, markedBy string, marks map[string]models.AttendanceOverride) (*models.Event, error) {
	event := s.store.EventByID(eventID)
	if event == nil {
		return nil, ErrEventNotFound
	}
	roster := s.store.PlayersByTeamID(event.TeamID)
	onRoster := make(map[string]bool, len(roster))
	for i := range roster {
		onRoster[roster[i].ID] = true
	}

	playerIDs := make([]string, 0, len(marks))
	for playerID := range marks {
		playerIDs = append(playerIDs, playerID)
	}
	sort.Strings(playerIDs)

	records := make([]models.AttendanceRecord, 0, len(playerIDs))
	now := s.clock.Now()
	for _, playerID := range playerIDs {
		mark := marks[playerID]
		if !onRoster[playerID] {
			return nil, ErrPlayerNotOnRoster
		}
		if !validAttendanceStatus(mark.Status) {
			return nil, ErrInvalidAttendanceStatus
		}
		rec := models.AttendanceRecord{
			EventID:      eventID,
			PlayerID:     playerID,
			Status:       mark.Status,
			CheckInTime:  mark.CheckInTime,
			ExcuseReason: mark.ExcuseReason,
			MarkedBy:     markedBy,
			MarkedAt:     now,
		}
		if mark.Status == models.AttendanceExcused {
			rec.ExcusedBy = markedBy
		}
		records = append(records, rec)
	}

	return s.store.UpsertAttendance(eventID, records)
}

func (s *eventService) MarkAllPendingPresent(ctx context.Context, eventID, markedBy string) (*models.Event, error) {
	event := s.store.EventByID(eventID)
	if event == nil {
		return nil, ErrEventNotFound
	}
	roster := s.store.PlayersByTeamID(event.TeamID)
	marks := s.attendance.MarkAllPending(roster, event, nil)
	if len(marks) == 0 {
		return event, nil
	}
	return s.SaveAttendance(ctx, eventID, markedBy, marks)
}

func (s *eventService) SubmitResult(_ context.Context, eventID string, input SubmitResultInput) (*models.Event, error) {
	event := s.store.EventByID(eventID)
	if event == nil {
		return nil, ErrEventNotFound
	}
	if event.Type != models.EventMatch {
		return nil, ErrNotAMatch
	}

	details := models.MatchDetails{}
	if event.MatchDetails != nil {
		details.Opponent = event.MatchDetails.Opponent
		details.Home = event.MatchDetails.Home
	}
	score := input.Score
	details.Score = &score
	details.Lineup = input.Lineup
	details.Substitutions = input.Substitutions
	details.GoalScorers = input.GoalScorers
	details.Cards = input.Cards
	details.Result = deriveResult(score)

	updated, err := s.store.SetMatchDetails(eventID, details)
	if err != nil {
		return nil, err
	}
	if s.hub != nil {
		s.hub.BroadcastToTeam(updated.TeamID, live.Message{Type: live.MessageMatchResult, Payload: updated})
	}
	return updated, nil
}

func deriveResult(score models.Score) models.MatchResult {
	switch {
	case score.Team > score.Opponent:
		return models.ResultWin
	case score.Team < score.Opponent:
		return models.ResultLoss
	default:
		return models.ResultDraw
	}
}
