package db

import "github.com/google/uuid"

const DefaultPlayerDescription = "A Non descript player."

// PlayerLocation associates a player with a location. The referenced rows
// are not constrained by foreign keys.
type PlayerLocation struct {
	Record
	Player      uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"player"`
	Location    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"location"`
	Description string    `gorm:"not null;default:'A Non descript player.'" json:"description"`
}

func NewPlayerLocation(player, location uuid.UUID, description string) *PlayerLocation {
	if description == "" {
		description = DefaultPlayerDescription
	}
	return &PlayerLocation{
		Record:      newRecord(),
		Player:      player,
		Location:    location,
		Description: description,
	}
}
