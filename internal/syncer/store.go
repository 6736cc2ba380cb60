package syncer

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rosecitylabs/pdxevents/internal/models"
)

// GormEventStore persists synced events with (external_id, api_source) as
// the upsert conflict target.
type GormEventStore struct {
	db *gorm.DB
}

func NewGormEventStore(db *gorm.DB) *GormEventStore {
	return &GormEventStore{db: db}
}

func (s *GormEventStore) ExistingKeys(ctx context.Context, source string, externalIDs []string) (map[string]struct{}, error) {
	if len(externalIDs) == 0 {
		return map[string]struct{}{}, nil
	}

	var found []string
	err := s.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("api_source = ? AND external_id IN ?", source, externalIDs).
		Pluck("external_id", &found).Error
	if err != nil {
		return nil, err
	}

	keys := make(map[string]struct{}, len(found))
	for _, id := range found {
		keys[id] = struct{}{}
	}
	return keys, nil
}

func (s *GormEventStore) UpsertBatch(ctx context.Context, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "external_id"}, {Name: "api_source"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "description", "category",
				"venue_name", "venue_address", "venue_city", "venue_state", "venue_zip",
				"start_time", "end_time",
				"price_display", "price_min", "price_max",
				"image_url", "ticket_url", "organizer_name",
				"updated_at",
			}),
		}).
		Create(&events).Error
}

type GormSyncLogStore struct {
	db *gorm.DB
}

func NewGormSyncLogStore(db *gorm.DB) *GormSyncLogStore {
	return &GormSyncLogStore{db: db}
}

func (s *GormSyncLogStore) Create(ctx context.Context, syncLog *models.SyncLog) error {
	return s.db.WithContext(ctx).Create(syncLog).Error
}

func (s *GormSyncLogStore) Update(ctx context.Context, syncLog *models.SyncLog) error {
	return s.db.WithContext(ctx).Save(syncLog).Error
}
