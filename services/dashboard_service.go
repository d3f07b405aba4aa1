package services

import (
	"context"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/club-manager/models"
	"github.com/Dosada05/club-manager/store"
)

// DashboardService собирает ролевой дашборд: диспетчеризация по
// значению роли выбирает один из четырёх вариантов конверта.
type DashboardService interface {
	ForUser(ctx context.Context, user *models.User) (*models.Dashboard, error)
}

type dashboardService struct {
	store      *store.Store
	attendance AttendanceService
	stats      StatsService
	clock      clockwork.Clock
}

func NewDashboardService(st *store.Store, attendance AttendanceService, stats StatsService, clock clockwork.Clock) DashboardService {
	return &dashboardService{store: st, attendance: attendance, stats: stats, clock: clock}
}

func (s *dashboardService) ForUser(ctx context.Context, user *models.User) (*models.Dashboard, error) {
	if user == nil {
		return nil, ErrUserNotFound
	}
	switch user.Role {
	case models.RoleCoach:
		coach, err := s.coachDashboard(ctx, user)
		if err != nil {
			return nil, err
		}
		return &models.Dashboard{Role: models.RoleCoach, Coach: coach}, nil
	case models.RoleDirector:
		director, err := s.directorDashboard(ctx, user)
		if err != nil {
			return nil, err
		}
		return &models.Dashboard{Role: models.RoleDirector, Director: director}, nil
	case models.RoleParent:
		return &models.Dashboard{Role: models.RoleParent, Parent: s.parentDashboard(user)}, nil
	case models.RolePlayer:
		return &models.Dashboard{Role: models.RolePlayer, Player: s.playerDashboard(user)}, nil
	default:
		return nil, ErrUnknownRole
	}
}

func (s *dashboardService) coachDashboard(ctx context.Context, user *models.User) (*models.CoachDashboard, error) {
	teamID := user.TeamID
	dash := &models.CoachDashboard{Team: s.store.TeamByID(teamID)}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		dash.Roster = s.store.PlayersByTeamID(teamID)
		return nil
	})
	g.Go(func() error {
		dash.UpcomingEvents = s.upcomingTeamEvents(teamID, 5)
		return nil
	})
	g.Go(func() error {
		now := s.clock.Now()
		events := s.store.EventsByTeamID(teamID)
		dash.AttendanceRate = s.attendance.WindowRate(events, now.Add(-trendWindow), now)
		return nil
	})
	g.Go(func() error {
		rec := s.stats.TeamRecord(teamID)
		dash.Record = &rec
		return nil
	})
	g.Go(func() error {
		dash.TopScorers = s.stats.TopScorers(teamID, 3)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dash, nil
}

func (s *dashboardService) directorDashboard(ctx context.Context, user *models.User) (*models.DirectorDashboard, error) {
	clubID := user.ClubID
	dash := &models.DirectorDashboard{Club: s.store.ClubByID(clubID)}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		dash.Standings = s.stats.ClubStandings(clubID)
		return nil
	})
	g.Go(func() error {
		dash.UpcomingEvents = s.upcomingEvents(s.store.EventsByClubID(clubID), 5)
		return nil
	})
	g.Go(func() error {
		dash.Announcements = s.store.AnnouncementsByClubID(clubID)
		return nil
	})
	g.Go(func() error {
		dash.Bookings = s.store.BookingsByClubID(clubID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dash, nil
}

func (s *dashboardService) parentDashboard(user *models.User) *models.ParentDashboard {
	children := s.store.ChildrenOf(user)
	dash := &models.ParentDashboard{Children: make([]models.ChildSummary, 0, len(children))}
	now := s.clock.Now()
	for i := range children {
		child := children[i]
		events := s.store.EventsByTeamID(child.TeamID)
		dash.Children = append(dash.Children, models.ChildSummary{
			Player:         child,
			UpcomingEvents: s.upcomingEvents(events, 3),
			AttendanceRate: playerWindowRate(events, child.ID, now.Add(-trendWindow), now),
		})
	}
	return dash
}

func (s *dashboardService) playerDashboard(user *models.User) *models.PlayerDashboard {
	dash := &models.PlayerDashboard{
		Player:         s.store.PlayerByID(user.PlayerID),
		UpcomingEvents: s.upcomingTeamEvents(user.TeamID, 5),
	}
	record := s.stats.TeamRecord(user.TeamID)
	dash.Record = &record
	for _, tally := range s.stats.PlayerTallies(user.TeamID) {
		if tally.PlayerID == user.PlayerID {
			dash.Tally = tally
			break
		}
	}
	return dash
}

func (s *dashboardService) upcomingTeamEvents(teamID string, limit int) []models.Event {
	return s.upcomingEvents(s.store.EventsByTeamID(teamID), limit)
}

// upcomingEvents — будущие события по возрастанию времени начала.
func (s *dashboardService) upcomingEvents(events []models.Event, limit int) []models.Event {
	now := s.clock.Now()
	out := []models.Event{}
	for i := range events {
		start, err := events[i].StartsAt()
		if err != nil || !start.After(now) {
			continue
		}
		out = append(out, events[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, _ := out[i].StartsAt()
		sj, _ := out[j].StartsAt()
		return si.Before(sj)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// playerWindowRate — личная посещаемость игрока: present+late против
// всех его записей в событиях окна. События без записи игрока не
// учитываются вовсе.
func playerWindowRate(events []models.Event, playerID string, from, to time.Time) int {
	total, counted := 0, 0
	for i := range events {
		d, ok := parseEventDate(&events[i])
		if !ok || !inWindow(d, from, to) {
			continue
		}
		rec := events[i].AttendanceFor(playerID)
		if rec == nil {
			continue
		}
		total++
		if rec.Status == models.AttendancePresent || rec.Status == models.AttendanceLate {
			counted++
		}
	}
	return percentage(counted, total)
}
