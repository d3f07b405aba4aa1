package models

type Club struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	City        string   `json:"city" yaml:"city"`
	Country     string   `json:"country" yaml:"country"`
	Address     string   `json:"address,omitempty" yaml:"address"`
	FoundedYear int      `json:"founded_year" yaml:"founded_year"`
	TeamIDs     []string `json:"team_ids" yaml:"team_ids"`
	DirectorID  string   `json:"director_id" yaml:"director_id"`
}
