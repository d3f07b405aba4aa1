package services

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Dosada05/club-manager/models"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func newAttendanceService() AttendanceService {
	return NewAttendanceService(clockwork.NewFakeClockAt(testNow))
}

func roster(ids ...string) []models.Player {
	out := make([]models.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Player{ID: id})
	}
	return out
}

func eventWithAttendance(recs ...models.AttendanceRecord) *models.Event {
	return &models.Event{
		ID: "event-1", Type: models.EventTraining, Date: "2026-08-25",
		StartTime: "17:30", TeamID: "team-1", Attendance: recs,
	}
}

func rec(playerID string, status models.AttendanceStatus) models.AttendanceRecord {
	return models.AttendanceRecord{EventID: "event-1", PlayerID: playerID, Status: status}
}

func TestSummarizeScenario(t *testing.T) {
	// 5 игроков: 2 present, 1 late, 1 absent, 1 без отметки.
	svc := newAttendanceService()
	event := eventWithAttendance(
		rec("p1", models.AttendancePresent),
		rec("p2", models.AttendancePresent),
		rec("p3", models.AttendanceLate),
		rec("p4", models.AttendanceAbsent),
	)

	sum := svc.Summarize(roster("p1", "p2", "p3", "p4", "p5"), event, nil)

	if sum.Present != 2 || sum.Late != 1 || sum.Absent != 1 || sum.Excused != 0 || sum.Pending != 1 {
		t.Errorf("unexpected histogram: %+v", sum)
	}
	if sum.Rate != 60 {
		t.Errorf("expected rate 60, got %d", sum.Rate)
	}
}

func TestSummarizeHistogramSumsToRosterSize(t *testing.T) {
	svc := newAttendanceService()
	event := eventWithAttendance(rec("p1", models.AttendancePresent), rec("p3", models.AttendanceExcused))
	overrides := map[string]models.AttendanceOverride{
		"p2": {Status: models.AttendanceLate},
		"p4": {Status: models.AttendanceAbsent},
	}

	for _, r := range [][]models.Player{
		roster(),
		roster("p1"),
		roster("p1", "p2", "p3", "p4", "p5"),
		roster("p1", "p1", "p2"), // дубликат не должен раздувать сумму
	} {
		sum := svc.Summarize(r, event, overrides)
		got := sum.Present + sum.Late + sum.Absent + sum.Excused + sum.Pending
		if got != sum.Total {
			t.Errorf("histogram sum %d != total %d for roster %v", got, sum.Total, r)
		}
	}
}

func TestSummarizeEmptyRosterRateIsZero(t *testing.T) {
	svc := newAttendanceService()
	sum := svc.Summarize(nil, eventWithAttendance(), map[string]models.AttendanceOverride{
		"p1": {Status: models.AttendancePresent},
	})
	if sum.Rate != 0 || sum.Total != 0 {
		t.Errorf("empty roster must yield zero rate, got %+v", sum)
	}
}

func TestOverrideShadowsBase(t *testing.T) {
	svc := newAttendanceService()
	event := eventWithAttendance(rec("p1", models.AttendanceAbsent))
	overrides := map[string]models.AttendanceOverride{
		"p1": {Status: models.AttendancePresent},
	}

	if got := svc.Resolve(event, "p1", overrides); got != models.AttendancePresent {
		t.Errorf("override must shadow base record: got %s", got)
	}
	if got := svc.Resolve(event, "p1", nil); got != models.AttendanceAbsent {
		t.Errorf("without override base record applies: got %s", got)
	}
	if got := svc.Resolve(event, "p9", nil); got != models.AttendancePending {
		t.Errorf("no record and no override defaults to pending: got %s", got)
	}
}

func TestMarkAllPendingMarksOnlyPending(t *testing.T) {
	svc := newAttendanceService()
	event := eventWithAttendance(rec("p1", models.AttendanceAbsent), rec("p2", models.AttendanceExcused))
	r := roster("p1", "p2", "p3", "p4")

	marks := svc.MarkAllPending(r, event, nil)

	if len(marks) != 2 {
		t.Fatalf("expected only the 2 pending players marked, got %d", len(marks))
	}
	for _, id := range []string{"p3", "p4"} {
		ov, ok := marks[id]
		if !ok || ov.Status != models.AttendancePresent {
			t.Errorf("player %s: expected present override, got %+v", id, ov)
		}
		if ov.CheckInTime != "12:00" {
			t.Errorf("player %s: expected check-in 12:00 from clock, got %q", id, ov.CheckInTime)
		}
	}
	if _, ok := marks["p1"]; ok {
		t.Error("absent player must not be touched")
	}
}

func TestMarkAllPendingIsIdempotent(t *testing.T) {
	svc := newAttendanceService()
	event := eventWithAttendance(rec("p1", models.AttendanceLate))
	r := roster("p1", "p2", "p3")

	once := svc.MarkAllPending(r, event, nil)
	twice := svc.MarkAllPending(r, event, once)

	sumOnce := svc.Summarize(r, event, once)
	sumTwice := svc.Summarize(r, event, twice)
	if sumOnce != sumTwice {
		t.Errorf("second application changed the histogram: %+v vs %+v", sumOnce, sumTwice)
	}
	if len(once) != len(twice) {
		t.Errorf("second application changed override count: %d vs %d", len(once), len(twice))
	}
}

func TestMarkAllPendingDoesNotMutateInput(t *testing.T) {
	svc := newAttendanceService()
	overrides := map[string]models.AttendanceOverride{
		"p1": {Status: models.AttendanceAbsent},
	}
	out := svc.MarkAllPending(roster("p1", "p2"), eventWithAttendance(), overrides)

	if len(overrides) != 1 {
		t.Errorf("input override map was mutated: %+v", overrides)
	}
	if len(out) != 2 {
		t.Errorf("expected fresh map with 2 entries, got %d", len(out))
	}
}

func TestWindowRateFlattensAcrossEvents(t *testing.T) {
	svc := newAttendanceService()
	events := []models.Event{
		{ID: "e1", Date: "2026-08-20", Attendance: []models.AttendanceRecord{
			{PlayerID: "p1", Status: models.AttendancePresent},
			{PlayerID: "p2", Status: models.AttendanceLate},
			{PlayerID: "p3", Status: models.AttendanceAbsent},
		}},
		// Событие без записей: ноль и в числитель, и в знаменатель.
		{ID: "e2", Date: "2026-08-22", Attendance: []models.AttendanceRecord{}},
		{ID: "e3", Date: "2026-08-25", Attendance: []models.AttendanceRecord{
			{PlayerID: "p1", Status: models.AttendancePresent},
		}},
		// Вне окна, не учитывается.
		{ID: "e4", Date: "2026-06-01", Attendance: []models.AttendanceRecord{
			{PlayerID: "p1", Status: models.AttendanceAbsent},
		}},
	}

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	// 3 из 4 записей present/late => 75.
	if got := svc.WindowRate(events, from, testNow); got != 75 {
		t.Errorf("expected window rate 75, got %d", got)
	}
}

func TestWindowRateNoRecordsIsZero(t *testing.T) {
	svc := newAttendanceService()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if got := svc.WindowRate(nil, from, testNow); got != 0 {
		t.Errorf("expected 0 for empty window, got %d", got)
	}
}
