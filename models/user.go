package models

type UserRole string

const (
	RoleCoach    UserRole = "coach"
	RoleDirector UserRole = "director"
	RoleParent   UserRole = "parent"
	RolePlayer   UserRole = "player"
)

type User struct {
	ID        string   `json:"id" yaml:"id"`
	FirstName string   `json:"first_name" yaml:"first_name"`
	LastName  string   `json:"last_name" yaml:"last_name"`
	Email     string   `json:"email" yaml:"email"`
	Phone     string   `json:"phone,omitempty" yaml:"phone"`
	Role      UserRole `json:"role" yaml:"role"`
	ClubID    string   `json:"club_id" yaml:"club_id"`
	// TeamID установлен только для тренеров и игроков.
	TeamID string `json:"team_id,omitempty" yaml:"team_id"`
	// PlayerID связывает аккаунт с записью Player (роль player).
	PlayerID string `json:"player_id,omitempty" yaml:"player_id"`
	// ChildrenIDs установлены только для родителей.
	ChildrenIDs []string `json:"children_ids,omitempty" yaml:"children_ids"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
