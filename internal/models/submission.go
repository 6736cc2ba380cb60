package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission is a user-submitted event. Date and clock fields are kept as
// entered; the aggregation layer joins them into timestamps when the
// submission is approved and served alongside synced events.
type Submission struct {
	gorm.Model
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Title           string           `gorm:"not null" json:"title"`
	Description     string           `json:"description"`
	Category        string           `gorm:"not null" json:"category"`
	VenueName       string           `json:"venue_name"`
	VenueAddress    string           `json:"venue_address"`
	VenueCity       string           `json:"venue_city"`
	VenueState      string           `json:"venue_state"`
	VenueZip        string           `json:"venue_zip"`
	EventDate       string           `gorm:"not null" json:"event_date"`
	StartClock      string           `gorm:"not null" json:"start_clock"`
	EndClock        string           `json:"end_clock"`
	PriceDisplay    string           `json:"price_display"`
	ImageURL        string           `json:"image_url"`
	TicketURL       string           `json:"ticket_url"`
	OrganizerName   string           `json:"organizer_name"`
	Status          ModerationStatus `gorm:"not null;default:'pending';index" json:"status"`
	RejectionReason *string          `json:"rejection_reason"`
	ModeratedBy     *uuid.UUID       `gorm:"type:uuid" json:"moderated_by"`
	ModeratedAt     *time.Time       `json:"moderated_at"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	User            User             `json:"-"`
}

func (submission *Submission) BeforeCreate(tx *gorm.DB) (err error) {
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	return
}
