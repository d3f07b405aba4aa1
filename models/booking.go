package models

type FacilityBooking struct {
	ID          string `json:"id" yaml:"id"`
	ClubID      string `json:"club_id" yaml:"club_id"`
	TeamID      string `json:"team_id,omitempty" yaml:"team_id"`
	Facility    string `json:"facility" yaml:"facility"`
	Date        string `json:"date" yaml:"date"`
	StartTime   string `json:"start_time" yaml:"start_time"`
	DurationMin int    `json:"duration_min" yaml:"duration_min"`
	BookedBy    string `json:"booked_by" yaml:"booked_by"`
	Purpose     string `json:"purpose,omitempty" yaml:"purpose"`
}
