// Package store — реестр сущностей клуба в памяти.
//
// Коллекции заполняются из сид-датасета один раз и дальше read-mostly:
// Club/Team/Player/User не имеют API мутации вовсе, события меняются
// только через узкие точки (создание события, апсерт посещаемости,
// результат матча, флаг уведомления). Все аксессоры возвращают копии,
// вызывающий код никогда не алиасит внутренности store.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/Dosada05/club-manager/models"
	"github.com/Dosada05/club-manager/seed"
)

var ErrEventNotFound = errors.New("event not found")

type Store struct {
	mu sync.RWMutex

	clubs         []models.Club
	teams         []models.Team
	users         []models.User
	players       []models.Player
	events        []models.Event
	chats         []models.Chat
	messages      []models.Message
	announcements []models.Announcement
	bookings      []models.FacilityBooking
	news          []models.NewsPost
}

func New(ds *seed.Dataset) *Store {
	return &Store{
		clubs:         append([]models.Club(nil), ds.Clubs...),
		teams:         append([]models.Team(nil), ds.Teams...),
		users:         append([]models.User(nil), ds.Users...),
		players:       append([]models.Player(nil), ds.Players...),
		events:        append([]models.Event(nil), ds.Events...),
		chats:         append([]models.Chat(nil), ds.Chats...),
		messages:      append([]models.Message(nil), ds.Messages...),
		announcements: append([]models.Announcement(nil), ds.Announcements...),
		bookings:      append([]models.FacilityBooking(nil), ds.Bookings...),
		news:          append([]models.NewsPost(nil), ds.News...),
	}
}

// --- Поиск по id. Не найдено => nil, никогда не ошибка. ---

func (s *Store) ClubByID(id string) *models.Club {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.clubs {
		if s.clubs[i].ID == id {
			c := s.clubs[i]
			return &c
		}
	}
	return nil
}

func (s *Store) TeamByID(id string) *models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.teams {
		if s.teams[i].ID == id {
			t := s.teams[i]
			return &t
		}
	}
	return nil
}

func (s *Store) UserByID(id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

func (s *Store) PlayerByID(id string) *models.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playerByIDLocked(id)
}

func (s *Store) playerByIDLocked(id string) *models.Player {
	for i := range s.players {
		if s.players[i].ID == id {
			p := s.players[i]
			return &p
		}
	}
	return nil
}

func (s *Store) EventByID(id string) *models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.events {
		if s.events[i].ID == id {
			e := cloneEvent(s.events[i])
			return &e
		}
	}
	return nil
}

func (s *Store) ChatByID(id string) *models.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.chats {
		if s.chats[i].ID == id {
			c := s.chats[i]
			return &c
		}
	}
	return nil
}

// --- Выборки по родительскому id. ---
// Контракт: нет совпадений => пустой НЕ-nil срез; вызывающие используют
// len/range без проверок на nil.

// TeamsByClubID возвращает команды клуба в порядке club.TeamIDs.
func (s *Store) TeamsByClubID(clubID string) []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Team{}
	var club *models.Club
	for i := range s.clubs {
		if s.clubs[i].ID == clubID {
			club = &s.clubs[i]
			break
		}
	}
	if club == nil {
		return out
	}
	for _, teamID := range club.TeamIDs {
		for i := range s.teams {
			if s.teams[i].ID == teamID {
				out = append(out, s.teams[i])
				break
			}
		}
	}
	return out
}

// PlayersByTeamID возвращает состав в порядке team.PlayerIDs,
// дедуплицированный по id. Владение идёт через ссылки на id, поэтому
// авторитетен список команды, а не поле TeamID игрока.
func (s *Store) PlayersByTeamID(teamID string) []models.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Player{}
	var team *models.Team
	for i := range s.teams {
		if s.teams[i].ID == teamID {
			team = &s.teams[i]
			break
		}
	}
	if team == nil {
		return out
	}
	seen := map[string]bool{}
	for _, playerID := range team.PlayerIDs {
		if seen[playerID] {
			continue
		}
		if p := s.playerByIDLocked(playerID); p != nil {
			out = append(out, *p)
			seen[playerID] = true
		}
	}
	return out
}

// Events возвращает копию всех событий в порядке добавления.
func (s *Store) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Event, 0, len(s.events))
	for i := range s.events {
		out = append(out, cloneEvent(s.events[i]))
	}
	return out
}

func (s *Store) EventsByTeamID(teamID string) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Event{}
	for i := range s.events {
		if s.events[i].TeamID == teamID {
			out = append(out, cloneEvent(s.events[i]))
		}
	}
	return out
}

func (s *Store) EventsByClubID(clubID string) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Event{}
	for i := range s.events {
		if s.events[i].ClubID == clubID {
			out = append(out, cloneEvent(s.events[i]))
		}
	}
	return out
}

func (s *Store) ChatsByUserID(userID string) []models.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Chat{}
	for i := range s.chats {
		for _, pid := range s.chats[i].ParticipantIDs {
			if pid == userID {
				out = append(out, s.chats[i])
				break
			}
		}
	}
	return out
}

func (s *Store) MessagesByChatID(chatID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Message{}
	for i := range s.messages {
		if s.messages[i].ChatID == chatID {
			out = append(out, s.messages[i])
		}
	}
	return out
}

func (s *Store) AnnouncementsByClubID(clubID string) []models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Announcement{}
	for i := range s.announcements {
		if s.announcements[i].ClubID == clubID {
			out = append(out, s.announcements[i])
		}
	}
	return out
}

func (s *Store) BookingsByClubID(clubID string) []models.FacilityBooking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.FacilityBooking{}
	for i := range s.bookings {
		if s.bookings[i].ClubID == clubID {
			out = append(out, s.bookings[i])
		}
	}
	return out
}

func (s *Store) NewsByClubID(clubID string) []models.NewsPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.NewsPost{}
	for i := range s.news {
		if s.news[i].ClubID == clubID {
			out = append(out, s.news[i])
		}
	}
	return out
}

// ChildrenOf возвращает игроков из ChildrenIDs родителя.
func (s *Store) ChildrenOf(parent *models.User) []models.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Player{}
	if parent == nil {
		return out
	}
	for _, childID := range parent.ChildrenIDs {
		if p := s.playerByIDLocked(childID); p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// --- Точки мутации. Каждая заменяет значение целиком под одним локом. ---

// AddEvent добавляет событие в коллекцию. События никогда не удаляются.
func (s *Store) AddEvent(e models.Event) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Attendance == nil {
		e.Attendance = []models.AttendanceRecord{}
	}
	s.events = append(s.events, cloneEvent(e))
	return cloneEvent(s.events[len(s.events)-1])
}

// UpsertAttendance идемпотентно записывает отметки посещаемости:
// повторная отметка по той же паре (event, player) перезаписывает
// существующую запись, сохраняя её id, а не добавляет новую.
func (s *Store) UpsertAttendance(eventID string, records []models.AttendanceRecord) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.eventIndexLocked(eventID)
	if idx < 0 {
		return nil, ErrEventNotFound
	}
	ev := &s.events[idx]
	for _, rec := range records {
		rec.EventID = eventID
		replaced := false
		for i := range ev.Attendance {
			if ev.Attendance[i].PlayerID == rec.PlayerID {
				rec.ID = ev.Attendance[i].ID
				ev.Attendance[i] = rec
				replaced = true
				break
			}
		}
		if !replaced {
			if rec.ID == "" {
				rec.ID = uuid.NewString()
			}
			ev.Attendance = append(ev.Attendance, rec)
		}
	}
	out := cloneEvent(*ev)
	return &out, nil
}

// SetMatchDetails заменяет детали матча целиком.
func (s *Store) SetMatchDetails(eventID string, details models.MatchDetails) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.eventIndexLocked(eventID)
	if idx < 0 {
		return nil, ErrEventNotFound
	}
	d := cloneMatchDetails(details)
	s.events[idx].MatchDetails = &d
	out := cloneEvent(s.events[idx])
	return &out, nil
}

func (s *Store) MarkNotificationSent(eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.eventIndexLocked(eventID)
	if idx < 0 {
		return ErrEventNotFound
	}
	s.events[idx].NotificationSent = true
	return nil
}

func (s *Store) eventIndexLocked(eventID string) int {
	for i := range s.events {
		if s.events[i].ID == eventID {
			return i
		}
	}
	return -1
}

func cloneEvent(e models.Event) models.Event {
	e.Attendance = append([]models.AttendanceRecord{}, e.Attendance...)
	if e.MatchDetails != nil {
		d := cloneMatchDetails(*e.MatchDetails)
		e.MatchDetails = &d
	}
	return e
}

func cloneMatchDetails(d models.MatchDetails) models.MatchDetails {
	if d.Score != nil {
		sc := *d.Score
		d.Score = &sc
	}
	d.Lineup = append([]string(nil), d.Lineup...)
	d.Substitutions = append([]models.Substitution(nil), d.Substitutions...)
	d.GoalScorers = append([]models.GoalScorer(nil), d.GoalScorers...)
	d.Cards = append([]models.Card(nil), d.Cards...)
	return d
}
