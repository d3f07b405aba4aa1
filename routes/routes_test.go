package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"

	"github.com/Dosada05/club-manager/handlers"
	"github.com/Dosada05/club-manager/live"
	"github.com/Dosada05/club-manager/models"
	"github.com/Dosada05/club-manager/seed"
	"github.com/Dosada05/club-manager/services"
	"github.com/Dosada05/club-manager/storage"
	"github.com/Dosada05/club-manager/store"
)

const testJWTSecret = "test-secret"

// Фиксированный момент внутри сезона датасета.
var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dataset, err := seed.Load()
	if err != nil {
		t.Fatalf("seed.Load: %v", err)
	}
	entityStore := store.New(dataset)
	kv := storage.NewMemoryStore()
	hub := live.NewHub()
	go hub.Run()

	clock := clockwork.NewFakeClockAt(testNow)
	attendance := services.NewAttendanceService(clock)
	stats := services.NewStatsService(entityStore, attendance, clock)
	sessions := services.NewSessionService(entityStore, kv)
	events := services.NewEventService(entityStore, attendance, hub, clock)
	dashboards := services.NewDashboardService(entityStore, attendance, stats, clock)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		testJWTSecret,
		handlers.NewAuthHandler(sessions, testJWTSecret),
		handlers.NewUserHandler(entityStore),
		handlers.NewClubHandler(entityStore),
		handlers.NewTeamHandler(entityStore),
		handlers.NewEventHandler(events, attendance, entityStore),
		handlers.NewStatsHandler(stats),
		handlers.NewChatHandler(entityStore),
		handlers.NewDashboardHandler(dashboards, entityStore),
		handlers.NewWebSocketHandler(hub, entityStore),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func login(t *testing.T, server *httptest.Server, userID string) string {
	t.Helper()
	resp := doJSON(t, http.MethodPost, server.URL+"/auth/login", "", map[string]string{"user_id": userID})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login as %s: status %d", userID, resp.StatusCode)
	}
	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeBody(t, resp, &body)
	if body.Token == "" {
		t.Fatal("login returned empty token")
	}
	if body.User.ID != userID {
		t.Fatalf("login returned wrong user: %s", body.User.ID)
	}
	return body.Token
}

func TestLoginUnknownUserReturnsNoContent(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/auth/login", "", map[string]string{"user_id": "no-such-user"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204 for unknown id, got %d", resp.StatusCode)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/dashboard", "", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("dashboard without token: expected 401, got %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPost, server.URL+"/events", "", map[string]string{"title": "x"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("event creation without token: expected 401, got %d", resp.StatusCode)
	}
}

func TestDashboardForCoach(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server, "user-coach1")

	resp := doJSON(t, http.MethodGet, server.URL+"/dashboard", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard: status %d", resp.StatusCode)
	}
	var body struct {
		Dashboard models.Dashboard `json:"dashboard"`
	}
	decodeBody(t, resp, &body)
	if body.Dashboard.Role != models.RoleCoach {
		t.Errorf("expected coach dashboard, got %s", body.Dashboard.Role)
	}
	if body.Dashboard.Coach == nil || body.Dashboard.Coach.Team == nil {
		t.Fatalf("coach variant incomplete: %+v", body.Dashboard.Coach)
	}
	if body.Dashboard.Coach.Team.ID != "team-1" {
		t.Errorf("coach must see their own team, got %s", body.Dashboard.Coach.Team.ID)
	}
}

func TestTeamRecordFromSeed(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/teams/team-1/record", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("record: status %d", resp.StatusCode)
	}
	var body struct {
		Record models.TeamRecord `json:"record"`
	}
	decodeBody(t, resp, &body)

	// Сыграны: победа 3-1, поражение 0-2, ничья 1-1. Будущий матч без
	// результата не учитывается.
	rec := body.Record
	if rec.MatchesPlayed != 3 || rec.Wins != 1 || rec.Draws != 1 || rec.Losses != 1 {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Points != 4 {
		t.Errorf("expected 4 points, got %d", rec.Points)
	}
}

func TestClubStandingsFromSeed(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/clubs/club-1/standings", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("standings: status %d", resp.StatusCode)
	}
	var body struct {
		Standings []models.TeamRecord `json:"standings"`
	}
	decodeBody(t, resp, &body)
	if len(body.Standings) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(body.Standings))
	}
	// team-1: 4 очка, team-2: 3 очка.
	if body.Standings[0].TeamID != "team-1" {
		t.Errorf("expected team-1 on top, got %s", body.Standings[0].TeamID)
	}
}

func TestAttendanceSummaryWithOverrides(t *testing.T) {
	server := newTestServer(t)
	url := server.URL + "/events/event-3/attendance/summary"

	// Базовые записи: 3 present, 1 absent из состава в 6 игроков.
	resp := doJSON(t, http.MethodPost, url, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("summary: status %d", resp.StatusCode)
	}
	var body struct {
		Summary models.AttendanceSummary `json:"summary"`
	}
	decodeBody(t, resp, &body)
	if body.Summary.Present != 3 || body.Summary.Absent != 1 || body.Summary.Pending != 2 {
		t.Errorf("unexpected base histogram: %+v", body.Summary)
	}
	if body.Summary.Rate != 50 {
		t.Errorf("expected base rate 50, got %d", body.Summary.Rate)
	}

	// Правка накрывает базовую запись, не сохраняясь.
	resp = doJSON(t, http.MethodPost, url, "", map[string]any{
		"overrides": map[string]models.AttendanceOverride{
			"player-5": {Status: models.AttendancePresent},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("summary with overrides: status %d", resp.StatusCode)
	}
	decodeBody(t, resp, &body)
	if body.Summary.Present != 4 || body.Summary.Pending != 1 {
		t.Errorf("override not applied: %+v", body.Summary)
	}

	// Повторный запрос без правок видит исходное состояние.
	resp = doJSON(t, http.MethodPost, url, "", nil)
	decodeBody(t, resp, &body)
	if body.Summary.Present != 3 {
		t.Errorf("overrides must not persist, got %+v", body.Summary)
	}
}

func TestEventLifecycleOverHTTP(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server, "user-coach1")

	// Создание матча.
	resp := doJSON(t, http.MethodPost, server.URL+"/events", token, services.CreateEventInput{
		Type: models.EventMatch, Title: "Friendly",
		Date: "2026-08-29", StartTime: "11:00", DurationMin: 80,
		TeamID: "team-1", Opponent: "Esil Academy", Home: true,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create event: status %d", resp.StatusCode)
	}
	var created struct {
		Event models.Event `json:"event"`
	}
	decodeBody(t, resp, &created)
	eventID := created.Event.ID
	if eventID == "" {
		t.Fatal("created event has no id")
	}
	if created.Event.CreatedBy != "user-coach1" {
		t.Errorf("creator must come from the token, got %q", created.Event.CreatedBy)
	}

	// Отметка посещаемости.
	resp = doJSON(t, http.MethodPut, server.URL+"/events/"+eventID+"/attendance", token, map[string]any{
		"marks": map[string]models.AttendanceOverride{
			"player-1": {Status: models.AttendancePresent, CheckInTime: "10:45"},
			"player-2": {Status: models.AttendanceAbsent},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save attendance: status %d", resp.StatusCode)
	}
	var updated struct {
		Event models.Event `json:"event"`
	}
	decodeBody(t, resp, &updated)
	if len(updated.Event.Attendance) != 2 {
		t.Fatalf("expected 2 attendance records, got %d", len(updated.Event.Attendance))
	}

	// Остальные отмечаются разом.
	resp = doJSON(t, http.MethodPost, server.URL+"/events/"+eventID+"/attendance/present-all", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("present-all: status %d", resp.StatusCode)
	}
	decodeBody(t, resp, &updated)
	if len(updated.Event.Attendance) != 6 {
		t.Fatalf("expected full roster marked, got %d records", len(updated.Event.Attendance))
	}
	for _, rec := range updated.Event.Attendance {
		if rec.PlayerID == "player-2" && rec.Status != models.AttendanceAbsent {
			t.Errorf("absent mark must survive present-all, got %s", rec.Status)
		}
	}

	// Отправка результата: result выводится из счёта.
	resp = doJSON(t, http.MethodPut, server.URL+"/events/"+eventID+"/result", token, services.SubmitResultInput{
		Score:       models.Score{Team: 2, Opponent: 0},
		GoalScorers: []models.GoalScorer{{PlayerID: "player-1", Minute: 14}},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit result: status %d", resp.StatusCode)
	}
	decodeBody(t, resp, &updated)
	if updated.Event.MatchDetails == nil || updated.Event.MatchDetails.Result != models.ResultWin {
		t.Fatalf("expected derived win, got %+v", updated.Event.MatchDetails)
	}
	if updated.Event.MatchDetails.Opponent != "Esil Academy" {
		t.Errorf("opponent lost on result submission: %+v", updated.Event.MatchDetails)
	}
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server, "user-parent1")

	resp := doJSON(t, http.MethodGet, server.URL+"/auth/session", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("session: status %d", resp.StatusCode)
	}
	var session struct {
		User      *models.User `json:"user"`
		Onboarded bool         `json:"onboarded"`
	}
	decodeBody(t, resp, &session)
	if session.User == nil || session.User.ID != "user-parent1" {
		t.Fatalf("expected persisted session, got %+v", session.User)
	}
	if session.Onboarded {
		t.Error("onboarding must start false")
	}

	resp = doJSON(t, http.MethodPost, server.URL+"/auth/onboarding", token, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("onboarding: status %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodGet, server.URL+"/auth/session", token, nil)
	decodeBody(t, resp, &session)
	if !session.Onboarded {
		t.Error("onboarding flag not persisted")
	}

	resp = doJSON(t, http.MethodPost, server.URL+"/auth/logout", token, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout: status %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodGet, server.URL+"/auth/session", token, nil)
	decodeBody(t, resp, &session)
	if session.User != nil {
		t.Errorf("session survived logout: %+v", session.User)
	}
}

func TestUnknownEventIs404(t *testing.T) {
	server := newTestServer(t)
	resp := doJSON(t, http.MethodGet, server.URL+"/events/no-such-event", "", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}
