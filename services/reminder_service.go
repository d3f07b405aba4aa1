package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Dosada05/club-manager/live"
	"github.com/Dosada05/club-manager/store"
)

// reminderHorizon — за сколько до начала события уходит напоминание.
const reminderHorizon = 24 * time.Hour

// ReminderService рассылает напоминания о предстоящих событиях в
// комнаты команд и проставляет NotificationSent, чтобы событие не
// уведомлялось повторно.
type ReminderService interface {
	DispatchDueReminders(ctx context.Context) (int, error)
}

type reminderService struct {
	store  *store.Store
	hub    *live.Hub
	clock  clockwork.Clock
	logger *slog.Logger
}

func NewReminderService(st *store.Store, hub *live.Hub, clock clockwork.Clock, logger *slog.Logger) ReminderService {
	return &reminderService{store: st, hub: hub, clock: clock, logger: logger}
}

func (s *reminderService) DispatchDueReminders(_ context.Context) (int, error) {
	now := s.clock.Now()
	sent := 0
	for _, event := range s.store.Events() {
		if event.NotificationSent {
			continue
		}
		start, err := event.StartsAt()
		if err != nil {
			continue
		}
		if !start.After(now) || start.After(now.Add(reminderHorizon)) {
			continue
		}
		if s.hub != nil {
			s.hub.BroadcastToTeam(event.TeamID, live.Message{Type: live.MessageEventReminder, Payload: event})
		}
		if err := s.store.MarkNotificationSent(event.ID); err != nil {
			return sent, err
		}
		s.logger.Info("event reminder dispatched",
			slog.String("event_id", event.ID),
			slog.String("team_id", event.TeamID),
			slog.Time("starts_at", start))
		sent++
	}
	return sent, nil
}
