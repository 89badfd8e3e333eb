package db

import "github.com/google/uuid"

// LocationExit connects two locations. Nothing routes to it yet; the table
// exists so movement can be layered on without a schema change.
type LocationExit struct {
	Record
	Location    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"location"`
	Destination uuid.UUID `gorm:"type:varchar(36);not null" json:"destination"`
	ExitMessage string    `gorm:"not null" json:"exit_message"`
}

func NewLocationExit(location, destination uuid.UUID, message string) *LocationExit {
	return &LocationExit{
		Record:      newRecord(),
		Location:    location,
		Destination: destination,
		ExitMessage: message,
	}
}
