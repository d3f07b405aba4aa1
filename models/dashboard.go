package models

// Dashboard — конверт ролевого дашборда: заполнено ровно одно из
// четырёх полей, соответствующее Role.
type Dashboard struct {
	Role     UserRole           `json:"role"`
	Coach    *CoachDashboard    `json:"coach,omitempty"`
	Director *DirectorDashboard `json:"director,omitempty"`
	Parent   *ParentDashboard   `json:"parent,omitempty"`
	Player   *PlayerDashboard   `json:"player,omitempty"`
}

type CoachDashboard struct {
	Team           *Team         `json:"team,omitempty"`
	Roster         []Player      `json:"roster"`
	UpcomingEvents []Event       `json:"upcoming_events"`
	AttendanceRate int           `json:"attendance_rate"`
	Record         *TeamRecord   `json:"record,omitempty"`
	TopScorers     []PlayerTally `json:"top_scorers"`
}

type DirectorDashboard struct {
	Club           *Club             `json:"club,omitempty"`
	Standings      []TeamRecord      `json:"standings"`
	UpcomingEvents []Event           `json:"upcoming_events"`
	Announcements  []Announcement    `json:"announcements"`
	Bookings       []FacilityBooking `json:"bookings"`
}

type ChildSummary struct {
	Player         Player  `json:"player"`
	UpcomingEvents []Event `json:"upcoming_events"`
	AttendanceRate int     `json:"attendance_rate"`
}

type ParentDashboard struct {
	Children []ChildSummary `json:"children"`
}

type PlayerDashboard struct {
	Player         *Player     `json:"player,omitempty"`
	Tally          PlayerTally `json:"tally"`
	Record         *TeamRecord `json:"record,omitempty"`
	UpcomingEvents []Event     `json:"upcoming_events"`
}
