package models

import "time"

type EventType string

const (
	EventTraining EventType = "training"
	EventMatch    EventType = "match"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendancePending AttendanceStatus = "pending"
	AttendanceExcused AttendanceStatus = "excused"
)

type MatchResult string

const (
	ResultWin  MatchResult = "win"
	ResultDraw MatchResult = "draw"
	ResultLoss MatchResult = "loss"
)

type CardType string

const (
	CardYellow CardType = "yellow"
	CardRed    CardType = "red"
)

// DateLayout и TimeLayout — форматы полей Date и StartTime.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event — тренировка или матч команды.
// Инвариант: записи Attendance ссылаются только на игроков из состава
// TeamID, не больше одной записи на пару (event, player).
type Event struct {
	ID               string             `json:"id" yaml:"id"`
	Type             EventType          `json:"type" yaml:"type"`
	Title            string             `json:"title" yaml:"title"`
	Date             string             `json:"date" yaml:"date"`
	StartTime        string             `json:"start_time" yaml:"start_time"`
	DurationMin      int                `json:"duration_min" yaml:"duration_min"`
	Location         string             `json:"location" yaml:"location"`
	TeamID           string             `json:"team_id" yaml:"team_id"`
	ClubID           string             `json:"club_id" yaml:"club_id"`
	CreatedBy        string             `json:"created_by" yaml:"created_by"`
	Attendance       []AttendanceRecord `json:"attendance" yaml:"attendance"`
	MatchDetails     *MatchDetails      `json:"match_details,omitempty" yaml:"match_details"`
	Notes            string             `json:"notes,omitempty" yaml:"notes"`
	NotificationSent bool               `json:"notification_sent" yaml:"notification_sent"`
}

// StartsAt собирает Date и StartTime в момент времени.
func (e *Event) StartsAt() (time.Time, error) {
	return time.Parse(DateLayout+" "+TimeLayout, e.Date+" "+e.StartTime)
}

// AttendanceFor возвращает сохранённую запись посещаемости игрока, если есть.
func (e *Event) AttendanceFor(playerID string) *AttendanceRecord {
	for i := range e.Attendance {
		if e.Attendance[i].PlayerID == playerID {
			return &e.Attendance[i]
		}
	}
	return nil
}

type AttendanceRecord struct {
	ID           string           `json:"id" yaml:"id"`
	EventID      string           `json:"event_id" yaml:"event_id"`
	PlayerID     string           `json:"player_id" yaml:"player_id"`
	Status       AttendanceStatus `json:"status" yaml:"status"`
	CheckInTime  string           `json:"check_in_time,omitempty" yaml:"check_in_time"`
	MarkedBy     string           `json:"marked_by,omitempty" yaml:"marked_by"`
	ExcuseReason string           `json:"excuse_reason,omitempty" yaml:"excuse_reason"`
	ExcusedBy    string           `json:"excused_by,omitempty" yaml:"excused_by"`
	MarkedAt     time.Time        `json:"marked_at,omitempty" yaml:"marked_at"`
}

// AttendanceOverride — несохранённая локальная правка посещаемости.
// Правки передаются явной картой playerID -> override сквозь вызовы
// агрегатора и накрывают сохранённые записи (override-shadows-base).
type AttendanceOverride struct {
	Status       AttendanceStatus `json:"status"`
	CheckInTime  string           `json:"check_in_time,omitempty"`
	ExcuseReason string           `json:"excuse_reason,omitempty"`
}

type Score struct {
	Team     int `json:"team" yaml:"team"`
	Opponent int `json:"opponent" yaml:"opponent"`
}

type GoalScorer struct {
	PlayerID   string `json:"player_id" yaml:"player_id"`
	Minute     int    `json:"minute" yaml:"minute"`
	AssistedBy string `json:"assisted_by,omitempty" yaml:"assisted_by"`
}

type Card struct {
	PlayerID string   `json:"player_id" yaml:"player_id"`
	Minute   int      `json:"minute" yaml:"minute"`
	Type     CardType `json:"type" yaml:"type"`
}

type Substitution struct {
	PlayerOut string `json:"player_out" yaml:"player_out"`
	PlayerIn  string `json:"player_in" yaml:"player_in"`
	Minute    int    `json:"minute" yaml:"minute"`
}

// MatchDetails заполняется при создании матча (соперник, дом/выезд)
// и дополняется счётом после игры. Result выводится из Score при
// отправке результата, см. services.EventService.SubmitResult.
type MatchDetails struct {
	Opponent      string         `json:"opponent" yaml:"opponent"`
	Home          bool           `json:"home" yaml:"home"`
	Score         *Score         `json:"score,omitempty" yaml:"score"`
	Lineup        []string       `json:"lineup,omitempty" yaml:"lineup"`
	Substitutions []Substitution `json:"substitutions,omitempty" yaml:"substitutions"`
	GoalScorers   []GoalScorer   `json:"goal_scorers,omitempty" yaml:"goal_scorers"`
	Cards         []Card         `json:"cards,omitempty" yaml:"cards"`
	Result        MatchResult    `json:"result,omitempty" yaml:"result"`
}
