package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MusicVideo struct {
	gorm.Model
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ArtistName      string           `gorm:"not null" json:"artist_name"`
	Title           string           `gorm:"not null" json:"title"`
	VideoURL        string           `gorm:"not null" json:"video_url"`
	Status          ModerationStatus `gorm:"not null;default:'pending';index" json:"status"`
	RejectionReason *string          `json:"rejection_reason"`
	ModeratedBy     *uuid.UUID       `gorm:"type:uuid" json:"moderated_by"`
	ModeratedAt     *time.Time       `json:"moderated_at"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	User            User             `json:"-"`
}

func (video *MusicVideo) BeforeCreate(tx *gorm.DB) (err error) {
	if video.ID == uuid.Nil {
		video.ID = uuid.New()
	}
	return
}
