// Package seed содержит встроенный мок-датасет клуба.
// Датасет read-only: store копирует его при инициализации.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Dosada05/club-manager/models"
)

//go:embed seed.yaml
var seedYAML []byte

type Dataset struct {
	Clubs         []models.Club            `yaml:"clubs"`
	Teams         []models.Team            `yaml:"teams"`
	Users         []models.User            `yaml:"users"`
	Players       []models.Player          `yaml:"players"`
	Events        []models.Event           `yaml:"events"`
	Chats         []models.Chat            `yaml:"chats"`
	Messages      []models.Message         `yaml:"messages"`
	Announcements []models.Announcement    `yaml:"announcements"`
	Bookings      []models.FacilityBooking `yaml:"bookings"`
	News          []models.NewsPost        `yaml:"news"`
}

// Load разбирает встроенный YAML-датасет.
func Load() (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(seedYAML, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse embedded seed dataset: %w", err)
	}
	return &ds, nil
}
