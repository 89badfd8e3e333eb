package db

type Location struct {
	Record
	Name        string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string `gorm:"not null" json:"description"`
}

func NewLocation(name, description string) *Location {
	return &Location{
		Record:      newRecord(),
		Name:        name,
		Description: description,
	}
}
