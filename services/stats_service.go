package services

import (
	"sort"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Dosada05/club-manager/models"
	"github.com/Dosada05/club-manager/store"
)

const trendWindow = 30 * 24 * time.Hour

// StatsService — агрегатор матчевой статистики. «Сыгранным» считается
// матч с датой в прошлом и проставленным результатом; будущие и
// безрезультатные матчи не попадают ни в одну сводку.
type StatsService interface {
	TeamRecord(teamID string) models.TeamRecord

	// ClubStandings ранжирует команды клуба по убыванию очков.
	// Равенство очков сохраняет входной порядок: вторичного
	// тай-брейка (разница мячей и т.п.) намеренно нет.
	ClubStandings(clubID string) []models.TeamRecord

	// PlayerTallies — голы/ассисты/карточки игроков состава по всем
	// сыгранным матчам команды, в порядке состава.
	PlayerTallies(teamID string) []models.PlayerTally

	TopScorers(teamID string, n int) []models.PlayerTally
	TopAssisters(teamID string, n int) []models.PlayerTally

	// Тренды: метрика за [now-30d, now] минус метрика за
	// [now-60d, now-30d). Пустое окно даёт 0.
	WinRateTrend(teamID string) models.Trend
	AttendanceTrend(teamID string) models.Trend
}

type statsService struct {
	store      *store.Store
	attendance AttendanceService
	clock      clockwork.Clock
}

func NewStatsService(st *store.Store, attendance AttendanceService, clock clockwork.Clock) StatsService {
	return &statsService{store: st, attendance: attendance, clock: clock}
}

// playedMatches отбирает матчи с датой до now и заполненным результатом.
func playedMatches(events []models.Event, now time.Time) []models.Event {
	out := []models.Event{}
	for i := range events {
		e := events[i]
		if e.Type != models.EventMatch || e.MatchDetails == nil || e.MatchDetails.Result == "" {
			continue
		}
		d, ok := parseEventDate(&e)
		if !ok || !d.Before(now) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func recordFromMatches(teamID, teamName string, matches []models.Event) models.TeamRecord {
	rec := models.TeamRecord{TeamID: teamID, TeamName: teamName}
	for i := range matches {
		details := matches[i].MatchDetails
		rec.MatchesPlayed++
		switch details.Result {
		case models.ResultWin:
			rec.Wins++
			rec.Points += 3
		case models.ResultDraw:
			rec.Draws++
			rec.Points++
		case models.ResultLoss:
			rec.Losses++
		}
		if details.Score != nil {
			rec.GoalsScored += details.Score.Team
			rec.GoalsConceded += details.Score.Opponent
		}
	}
	rec.GoalDifference = rec.GoalsScored - rec.GoalsConceded
	rec.WinRate = percentage(rec.Wins, rec.MatchesPlayed)
	return rec
}

func (s *statsService) TeamRecord(teamID string) models.TeamRecord {
	teamName := ""
	if team := s.store.TeamByID(teamID); team != nil {
		teamName = team.Name
	}
	matches := playedMatches(s.store.EventsByTeamID(teamID), s.clock.Now())
	return recordFromMatches(teamID, teamName, matches)
}

func (s *statsService) ClubStandings(clubID string) []models.TeamRecord {
	teams := s.store.TeamsByClubID(clubID)
	now := s.clock.Now()
	standings := make([]models.TeamRecord, 0, len(teams))
	for i := range teams {
		matches := playedMatches(s.store.EventsByTeamID(teams[i].ID), now)
		standings = append(standings, recordFromMatches(teams[i].ID, teams[i].Name, matches))
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Points > standings[j].Points
	})
	return standings
}

func (s *statsService) PlayerTallies(teamID string) []models.PlayerTally {
	roster := s.store.PlayersByTeamID(teamID)
	tallies := make([]models.PlayerTally, len(roster))
	index := make(map[string]int, len(roster))
	for i := range roster {
		tallies[i] = models.PlayerTally{PlayerID: roster[i].ID, PlayerName: roster[i].FullName()}
		index[roster[i].ID] = i
	}
	matches := playedMatches(s.store.EventsByTeamID(teamID), s.clock.Now())
	for i := range matches {
		details := matches[i].MatchDetails
		for _, goal := range details.GoalScorers {
			if idx, ok := index[goal.PlayerID]; ok {
				tallies[idx].Goals++
			}
			// Гол с ассистом инкрементирует оба счётчика независимо.
			if goal.AssistedBy != "" {
				if idx, ok := index[goal.AssistedBy]; ok {
					tallies[idx].Assists++
				}
			}
		}
		for _, card := range details.Cards {
			idx, ok := index[card.PlayerID]
			if !ok {
				continue
			}
			switch card.Type {
			case models.CardYellow:
				tallies[idx].YellowCards++
			case models.CardRed:
				tallies[idx].RedCards++
			}
		}
	}
	return tallies
}

func (s *statsService) TopScorers(teamID string, n int) []models.PlayerTally {
	return topBy(s.PlayerTallies(teamID), n, func(t models.PlayerTally) int { return t.Goals })
}

func (s *statsService) TopAssisters(teamID string, n int) []models.PlayerTally {
	return topBy(s.PlayerTallies(teamID), n, func(t models.PlayerTally) int { return t.Assists })
}

// topBy сортирует по убыванию ключа; равные значения остаются во
// входном порядке (стабильная сортировка, без вторичного ключа).
func topBy(tallies []models.PlayerTally, n int, key func(models.PlayerTally) int) []models.PlayerTally {
	out := append([]models.PlayerTally{}, tallies...)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	if n < 0 {
		n = 0
	}
	if n < len(out) {
		out = out[:n]
	}
	return out
}

func (s *statsService) WinRateTrend(teamID string) models.Trend {
	events := s.store.EventsByTeamID(teamID)
	now := s.clock.Now()
	current := windowWinRate(events, now.Add(-trendWindow), now)
	previous := windowWinRate(events, now.Add(-2*trendWindow), now.Add(-trendWindow))
	return models.Trend{Current: current, Previous: previous, Delta: current - previous}
}

func windowWinRate(events []models.Event, from, to time.Time) int {
	matches := playedMatches(events, to)
	wins, played := 0, 0
	for i := range matches {
		d, _ := parseEventDate(&matches[i])
		if !inWindow(d, from, to) {
			continue
		}
		played++
		if matches[i].MatchDetails.Result == models.ResultWin {
			wins++
		}
	}
	return percentage(wins, played)
}

func (s *statsService) AttendanceTrend(teamID string) models.Trend {
	events := s.store.EventsByTeamID(teamID)
	now := s.clock.Now()
	current := s.attendance.WindowRate(events, now.Add(-trendWindow), now)
	previous := s.attendance.WindowRate(events, now.Add(-2*trendWindow), now.Add(-trendWindow))
	return models.Trend{Current: current, Previous: previous, Delta: current - previous}
}
