package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Venue rows come from the approved-venues table. Venues implied by
// approved events are synthesized at read time and never written back.
type Venue struct {
	gorm.Model
	ID      uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Name    string           `gorm:"not null" json:"name"`
	Address string           `json:"address"`
	City    string           `json:"city"`
	State   string           `json:"state"`
	Zip     string           `json:"zip"`
	Status  ModerationStatus `gorm:"not null;default:'pending';index" json:"status"`
}

func (venue *Venue) BeforeCreate(tx *gorm.DB) (err error) {
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	return
}
