package models

type PlayerPosition string

const (
	PositionGoalkeeper PlayerPosition = "goalkeeper"
	PositionDefender   PlayerPosition = "defender"
	PositionMidfielder PlayerPosition = "midfielder"
	PositionForward    PlayerPosition = "forward"
)

// PlayerStats — накопленная статистика из сида. Она не пересчитывается
// на лету; живые агрегаты по матчам считает services.StatsService.
type PlayerStats struct {
	Goals         int  `json:"goals" yaml:"goals"`
	Assists       int  `json:"assists" yaml:"assists"`
	MinutesPlayed int  `json:"minutes_played" yaml:"minutes_played"`
	MatchesPlayed int  `json:"matches_played" yaml:"matches_played"`
	YellowCards   int  `json:"yellow_cards" yaml:"yellow_cards"`
	RedCards      int  `json:"red_cards" yaml:"red_cards"`
	CleanSheets   *int `json:"clean_sheets,omitempty" yaml:"clean_sheets"`
}

type MedicalRecord struct {
	ID          string `json:"id" yaml:"id"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
	Treatment   string `json:"treatment,omitempty" yaml:"treatment"`
}

type Player struct {
	ID             string          `json:"id" yaml:"id"`
	FirstName      string          `json:"first_name" yaml:"first_name"`
	LastName       string          `json:"last_name" yaml:"last_name"`
	BirthDate      string          `json:"birth_date" yaml:"birth_date"`
	Position       PlayerPosition  `json:"position" yaml:"position"`
	TeamID         string          `json:"team_id" yaml:"team_id"`
	ClubID         string          `json:"club_id" yaml:"club_id"`
	JerseyNumber   *int            `json:"jersey_number,omitempty" yaml:"jersey_number"`
	ParentIDs      []string        `json:"parent_ids" yaml:"parent_ids"`
	Stats          PlayerStats     `json:"stats" yaml:"stats"`
	MedicalRecords []MedicalRecord `json:"medical_records,omitempty" yaml:"medical_records"`
}

func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
