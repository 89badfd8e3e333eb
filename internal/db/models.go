package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record is embedded by every table. The identifier is assigned when the
// value is constructed and never changes afterwards.
type Record struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;index" json:"-"`
}

func newRecord() Record {
	return Record{ID: uuid.New()}
}

func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Identity returns the primary key.
func (r *Record) Identity() uuid.UUID {
	return r.ID
}

// Entity is satisfied by pointers to every model.
type Entity interface {
	Identity() uuid.UUID
}

// Models lists every table in creation order.
func Models() []any {
	return []any{
		&Player{},
		&Thing{},
		&Location{},
		&LocationExit{},
		&PlayerLocation{},
	}
}
