package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rosecitylabs/pdxevents/internal/models"
	"github.com/rosecitylabs/pdxevents/internal/syncer"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}, nil
}

type PayPalConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

func LoadPayPalConfig() (*PayPalConfig, error) {
	baseURL := os.Getenv("PAYPAL_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api-m.sandbox.paypal.com"
	}
	return &PayPalConfig{
		BaseURL:      baseURL,
		ClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		ClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
	}, nil
}

type PlacesConfig struct {
	APIKey string
}

func LoadPlacesConfig() (*PlacesConfig, error) {
	return &PlacesConfig{
		APIKey: os.Getenv("GOOGLE_PLACES_API_KEY"),
	}, nil
}

func LoadProviderConfig() (*syncer.ProviderConfig, error) {
	baseURL := os.Getenv("LISTING_PROVIDER_URL")
	if baseURL == "" {
		baseURL = "https://api.eventlistings.example.com/v3"
	}
	return &syncer.ProviderConfig{
		BaseURL: baseURL,
		APIKey:  os.Getenv("LISTING_PROVIDER_API_KEY"),
	}, nil
}

func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := enableUUIDExtension(db); err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Role{}, &models.User{},
		&models.Event{}, &models.Submission{}, &models.MusicVideo{},
		&models.Venue{}, &models.Donation{}, &models.SyncLog{},
	)
	if err != nil {
		return nil, err
	}

	seedRoles(db)

	return db, nil
}

func seedRoles(db *gorm.DB) {
	roles := []models.Role{
		{Name: "member"},
		{Name: "artist"},
		{Name: "admin"},
	}

	for _, role := range roles {
		var existingRole models.Role
		result := db.Where("name = ?", role.Name).First(&existingRole)
		if result.Error != nil {
			db.Create(&role)
		}
	}
}
