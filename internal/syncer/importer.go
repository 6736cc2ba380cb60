package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rosecitylabs/pdxevents/internal/models"
)

// ChunkSize bounds the number of rows in a single upsert call.
const ChunkSize = 10

type EventStore interface {
	ExistingKeys(ctx context.Context, source string, externalIDs []string) (map[string]struct{}, error)
	UpsertBatch(ctx context.Context, events []models.Event) error
}

type SyncLogStore interface {
	Create(ctx context.Context, syncLog *models.SyncLog) error
	Update(ctx context.Context, syncLog *models.SyncLog) error
}

// Stats aggregates one import run.
type Stats struct {
	Processed int      `json:"processed"`
	Added     int      `json:"added"`
	Updated   int      `json:"updated"`
	Errors    []string `json:"error_details,omitempty"`
}

type Importer struct {
	events EventStore
	logs   SyncLogStore
	logger *slog.Logger
}

func NewImporter(events EventStore, logs SyncLogStore, logger *slog.Logger) *Importer {
	return &Importer{events: events, logs: logs, logger: logger}
}

// Run upserts the given provider records in fixed-size chunks. A sync-log
// row is created in "running" state before processing and updated exactly
// once at the end. Chunk failures are collected and do not halt later
// chunks; the run then completes as partial_success. Only a failure before
// any processing (the log-row create) is returned as an error.
func (imp *Importer) Run(ctx context.Context, source string, records []ProviderEvent) (*Stats, error) {
	now := time.Now()
	syncLog := &models.SyncLog{
		Source:    source,
		Status:    models.SyncStatusRunning,
		StartedAt: now,
	}
	if err := imp.logs.Create(ctx, syncLog); err != nil {
		return nil, fmt.Errorf("create sync log: %w", err)
	}

	imp.logger.Info("starting import", "source", source, "records", len(records))

	stats := &Stats{}
	for start := 0; start < len(records); start += ChunkSize {
		end := start + ChunkSize
		if end > len(records) {
			end = len(records)
		}
		imp.runChunk(ctx, source, records[start:end], now, stats)
	}

	status := models.SyncStatusSuccess
	if len(stats.Errors) > 0 {
		// Every chunk failing is a wholesale failure, not a partial one.
		if stats.Processed == 0 {
			status = models.SyncStatusError
		} else {
			status = models.SyncStatusPartialSuccess
		}
		joined := strings.Join(stats.Errors, "; ")
		syncLog.ErrorMessage = &joined
	}

	completed := time.Now()
	syncLog.Status = status
	syncLog.Processed = stats.Processed
	syncLog.Added = stats.Added
	syncLog.Updated = stats.Updated
	syncLog.CompletedAt = &completed

	if err := imp.logs.Update(ctx, syncLog); err != nil {
		imp.logger.Error("failed to finalize sync log", "source", source, "error", err)
	}

	imp.logger.Info("import completed",
		"source", source,
		"status", status,
		"processed", stats.Processed,
		"added", stats.Added,
		"updated", stats.Updated,
		"errors", len(stats.Errors),
	)

	return stats, nil
}

func (imp *Importer) runChunk(ctx context.Context, source string, records []ProviderEvent, now time.Time, stats *Stats) {
	events := make([]models.Event, len(records))
	keys := make([]string, len(records))
	for i, record := range records {
		events[i] = MapEvent(record, source, now)
		keys[i] = events[i].ExternalID
	}

	existing, err := imp.events.ExistingKeys(ctx, source, keys)
	if err != nil {
		stats.Errors = append(stats.Errors, fmt.Sprintf("chunk lookup: %v", err))
		return
	}

	if err := imp.events.UpsertBatch(ctx, events); err != nil {
		stats.Errors = append(stats.Errors, fmt.Sprintf("chunk upsert: %v", err))
		return
	}

	stats.Processed += len(events)
	for _, key := range keys {
		if _, ok := existing[key]; ok {
			stats.Updated++
		} else {
			stats.Added++
		}
	}
}
