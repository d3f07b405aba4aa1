package models

import "time"

type ChatType string

const (
	ChatTeam   ChatType = "team"
	ChatDirect ChatType = "direct"
)

type Chat struct {
	ID             string   `json:"id" yaml:"id"`
	Type           ChatType `json:"type" yaml:"type"`
	Name           string   `json:"name" yaml:"name"`
	ClubID         string   `json:"club_id" yaml:"club_id"`
	TeamID         string   `json:"team_id,omitempty" yaml:"team_id"`
	ParticipantIDs []string `json:"participant_ids" yaml:"participant_ids"`
}

type Message struct {
	ID       string    `json:"id" yaml:"id"`
	ChatID   string    `json:"chat_id" yaml:"chat_id"`
	SenderID string    `json:"sender_id" yaml:"sender_id"`
	Text     string    `json:"text" yaml:"text"`
	SentAt   time.Time `json:"sent_at" yaml:"sent_at"`
}

type Announcement struct {
	ID       string    `json:"id" yaml:"id"`
	ClubID   string    `json:"club_id" yaml:"club_id"`
	TeamID   string    `json:"team_id,omitempty" yaml:"team_id"`
	AuthorID string    `json:"author_id" yaml:"author_id"`
	Title    string    `json:"title" yaml:"title"`
	Body     string    `json:"body" yaml:"body"`
	PostedAt time.Time `json:"posted_at" yaml:"posted_at"`
}

type NewsPost struct {
	ID          string    `json:"id" yaml:"id"`
	ClubID      string    `json:"club_id" yaml:"club_id"`
	Title       string    `json:"title" yaml:"title"`
	Body        string    `json:"body" yaml:"body"`
	PublishedAt time.Time `json:"published_at" yaml:"published_at"`
}
