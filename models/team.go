package models

type TeamGender string

const (
	GenderBoys  TeamGender = "boys"
	GenderGirls TeamGender = "girls"
	GenderMixed TeamGender = "mixed"
)

// Team владеет своими игроками и событиями только по ссылке на id,
// а не структурно: состав разрешается через store.PlayersByTeamID.
type Team struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	AgeGroup  string     `json:"age_group" yaml:"age_group"`
	Gender    TeamGender `json:"gender" yaml:"gender"`
	ClubID    string     `json:"club_id" yaml:"club_id"`
	CoachID   string     `json:"coach_id" yaml:"coach_id"`
	PlayerIDs []string   `json:"player_ids" yaml:"player_ids"`
}
