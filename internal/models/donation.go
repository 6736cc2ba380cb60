package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Donation struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Amount          int            `gorm:"not null" json:"amount"`
	DonorName       string         `json:"donor_name"`
	DonorEmail      string         `json:"donor_email"`
	Message         string         `json:"message"`
	Status          string         `gorm:"not null;default:'pending'" json:"status"`
	ProviderOrderID string         `gorm:"not null" json:"provider_order_id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (donation *Donation) BeforeCreate(tx *gorm.DB) (err error) {
	if donation.ID == uuid.Nil {
		donation.ID = uuid.New()
	}
	return
}
