package db

type Thing struct {
	Record
	Name     string  `gorm:"size:255;not null" json:"name"`
	Location *string `gorm:"size:255" json:"location"`
}

func NewThing(name string, location *string) *Thing {
	return &Thing{
		Record:   newRecord(),
		Name:     name,
		Location: location,
	}
}
