package models

// AttendanceSummary — гистограмма статусов посещаемости по составу.
// Сумма пяти счётчиков всегда равна Total (размеру состава).
type AttendanceSummary struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
	Excused int `json:"excused"`
	Pending int `json:"pending"`
	Total   int `json:"total"`
	// Rate = round(100 * (present+late) / total), 0 при пустом составе.
	Rate int `json:"rate"`
}

// TeamRecord — турнирные показатели команды по сыгранным матчам.
// Очки по футбольной схеме: победа 3, ничья 1, поражение 0.
type TeamRecord struct {
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name,omitempty"`
	MatchesPlayed  int    `json:"matches_played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	Points         int    `json:"points"`
	GoalsScored    int    `json:"goals_scored"`
	GoalsConceded  int    `json:"goals_conceded"`
	GoalDifference int    `json:"goal_difference"`
	WinRate        int    `json:"win_rate"`
}

type PlayerTally struct {
	PlayerID    string `json:"player_id"`
	PlayerName  string `json:"player_name,omitempty"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	YellowCards int    `json:"yellow_cards"`
	RedCards    int    `json:"red_cards"`
}

// Trend — значение метрики за окно [now-30d, now] против окна
// [now-60d, now-30d). Пустое окно даёт 0, так что скачок «0 -> X»
// возможен и является задокументированным поведением.
type Trend struct {
	Current  int `json:"current"`
	Previous int `json:"previous"`
	Delta    int `json:"delta"`
}
