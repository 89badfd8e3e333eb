package db

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Player struct {
	Record
	Name     string                     `gorm:"size:255;not null" json:"name"`
	Location *uuid.UUID                 `gorm:"type:varchar(36)" json:"location"`
	Heard    datatypes.JSONSlice[string] `gorm:"not null" json:"heard"`
}

func NewPlayer(name string, location *uuid.UUID) *Player {
	return &Player{
		Record:   newRecord(),
		Name:     name,
		Location: location,
		Heard:    datatypes.JSONSlice[string]{},
	}
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.Heard == nil {
		p.Heard = datatypes.JSONSlice[string]{}
	}
	return p.Record.BeforeCreate(tx)
}
