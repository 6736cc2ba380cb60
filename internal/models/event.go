package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is an externally sourced event row. The (external_id, api_source)
// pair is the upsert conflict key for the sync pipeline, so re-running an
// import never duplicates rows.
type Event struct {
	gorm.Model
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ExternalID    string     `gorm:"not null;uniqueIndex:idx_events_external_source" json:"external_id"`
	APISource     string     `gorm:"not null;uniqueIndex:idx_events_external_source" json:"api_source"`
	Title         string     `gorm:"not null" json:"title"`
	Description   string     `json:"description"`
	Category      string     `gorm:"not null" json:"category"`
	VenueName     string     `json:"venue_name"`
	VenueAddress  string     `json:"venue_address"`
	VenueCity     string     `json:"venue_city"`
	VenueState    string     `json:"venue_state"`
	VenueZip      string     `json:"venue_zip"`
	StartTime     time.Time  `gorm:"not null;index" json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	PriceDisplay  string     `json:"price_display"`
	PriceMin      *float64   `json:"price_min"`
	PriceMax      *float64   `json:"price_max"`
	ImageURL      string     `json:"image_url"`
	TicketURL     string     `json:"ticket_url"`
	OrganizerName string     `json:"organizer_name"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}
