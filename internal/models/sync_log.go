package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SyncStatusRunning        = "running"
	SyncStatusSuccess        = "success"
	SyncStatusPartialSuccess = "partial_success"
	SyncStatusError          = "error"
)

// SyncLog records one import run. It is created in "running" state before
// processing starts and updated exactly once on completion.
type SyncLog struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Source       string     `gorm:"not null;index" json:"source"`
	Status       string     `gorm:"not null" json:"status"`
	Processed    int        `json:"processed"`
	Added        int        `json:"added"`
	Updated      int        `json:"updated"`
	ErrorMessage *string    `json:"error_message"`
	StartedAt    time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

func (syncLog *SyncLog) BeforeCreate(tx *gorm.DB) (err error) {
	if syncLog.ID == uuid.Nil {
		syncLog.ID = uuid.New()
	}
	return
}
