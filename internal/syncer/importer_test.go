package syncer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rosecitylabs/pdxevents/internal/models"
)

type fakeEventStore struct {
	rows        map[string]models.Event // keyed source|external_id
	failUpserts map[int]error           // upsert call index -> error
	upsertCalls int
	lookupErr   error
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{rows: make(map[string]models.Event), failUpserts: make(map[int]error)}
}

func (f *fakeEventStore) key(source, externalID string) string {
	return source + "|" + externalID
}

func (f *fakeEventStore) ExistingKeys(ctx context.Context, source string, externalIDs []string) (map[string]struct{}, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	keys := make(map[string]struct{})
	for _, id := range externalIDs {
		if _, ok := f.rows[f.key(source, id)]; ok {
			keys[id] = struct{}{}
		}
	}
	return keys, nil
}

func (f *fakeEventStore) UpsertBatch(ctx context.Context, events []models.Event) error {
	call := f.upsertCalls
	f.upsertCalls++
	if err, ok := f.failUpserts[call]; ok {
		return err
	}
	for _, e := range events {
		f.rows[f.key(e.APISource, e.ExternalID)] = e
	}
	return nil
}

type fakeSyncLogStore struct {
	created   []*models.SyncLog
	updated   []*models.SyncLog
	createErr error
}

func (f *fakeSyncLogStore) Create(ctx context.Context, syncLog *models.SyncLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	logCopy := *syncLog
	f.created = append(f.created, &logCopy)
	return nil
}

func (f *fakeSyncLogStore) Update(ctx context.Context, syncLog *models.SyncLog) error {
	logCopy := *syncLog
	f.updated = append(f.updated, &logCopy)
	return nil
}

type ImporterTestSuite struct {
	suite.Suite

	events   *fakeEventStore
	logs     *fakeSyncLogStore
	importer *Importer
}

func (s *ImporterTestSuite) SetupTest() {
	s.events = newFakeEventStore()
	s.logs = &fakeSyncLogStore{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.importer = NewImporter(s.events, s.logs, logger)
}

func TestImporterTestSuite(t *testing.T) {
	suite.Run(t, new(ImporterTestSuite))
}

func (s *ImporterTestSuite) records(n int) []ProviderEvent {
	records := make([]ProviderEvent, n)
	for i := range records {
		records[i] = ProviderEvent{
			ID:        fmt.Sprintf("evt-%03d", i),
			Title:     fmt.Sprintf("Event %d", i),
			StartTime: "2026-03-05T19:00:00Z",
		}
	}
	return records
}

func (s *ImporterTestSuite) TestRunAllNew() {
	ctx := context.Background()

	stats, err := s.importer.Run(ctx, "eventlistings", s.records(25))

	s.Require().NoError(err)
	s.Equal(25, stats.Processed)
	s.Equal(25, stats.Added)
	s.Equal(0, stats.Updated)
	s.Empty(stats.Errors)
	s.Len(s.events.rows, 25)
	// 25 records in chunks of 10 -> 3 upsert calls
	s.Equal(3, s.events.upsertCalls)

	s.Require().Len(s.logs.created, 1)
	s.Equal(models.SyncStatusRunning, s.logs.created[0].Status)
	s.Require().Len(s.logs.updated, 1)
	s.Equal(models.SyncStatusSuccess, s.logs.updated[0].Status)
	s.Equal(25, s.logs.updated[0].Processed)
	s.NotNil(s.logs.updated[0].CompletedAt)
}

func (s *ImporterTestSuite) TestRerunIsIdempotent() {
	ctx := context.Background()
	records := s.records(12)

	_, err := s.importer.Run(ctx, "eventlistings", records)
	s.Require().NoError(err)

	stats, err := s.importer.Run(ctx, "eventlistings", records)
	s.Require().NoError(err)

	s.Equal(12, stats.Processed)
	s.Equal(0, stats.Added)
	s.Equal(12, stats.Updated)
	s.Len(s.events.rows, 12)
}

func (s *ImporterTestSuite) TestChunkFailureDoesNotHaltRun() {
	ctx := context.Background()
	s.events.failUpserts[1] = errors.New("connection reset")

	stats, err := s.importer.Run(ctx, "eventlistings", s.records(25))

	s.Require().NoError(err)
	s.Equal(15, stats.Processed)
	s.Equal(15, stats.Added)
	s.Require().Len(stats.Errors, 1)
	s.Contains(stats.Errors[0], "connection reset")

	s.Require().Len(s.logs.updated, 1)
	s.Equal(models.SyncStatusPartialSuccess, s.logs.updated[0].Status)
	s.Require().NotNil(s.logs.updated[0].ErrorMessage)
	s.Contains(*s.logs.updated[0].ErrorMessage, "connection reset")
}

func (s *ImporterTestSuite) TestLookupFailureCountsChunkError() {
	ctx := context.Background()
	s.events.lookupErr = errors.New("timeout")

	stats, err := s.importer.Run(ctx, "eventlistings", s.records(5))

	s.Require().NoError(err)
	s.Equal(0, stats.Processed)
	s.Len(stats.Errors, 1)
}

func (s *ImporterTestSuite) TestAllChunksFailingFinalizesAsError() {
	ctx := context.Background()
	s.events.failUpserts[0] = errors.New("connection refused")
	s.events.failUpserts[1] = errors.New("connection refused")

	stats, err := s.importer.Run(ctx, "eventlistings", s.records(15))

	s.Require().NoError(err)
	s.Equal(0, stats.Processed)
	s.Len(stats.Errors, 2)

	s.Require().Len(s.logs.updated, 1)
	s.Equal(models.SyncStatusError, s.logs.updated[0].Status)
	s.Require().NotNil(s.logs.updated[0].ErrorMessage)
}

func (s *ImporterTestSuite) TestLogCreateFailureAbortsBeforeProcessing() {
	ctx := context.Background()
	s.logs.createErr = errors.New("permission denied")

	stats, err := s.importer.Run(ctx, "eventlistings", s.records(5))

	s.Error(err)
	s.Nil(stats)
	s.Equal(0, s.events.upsertCalls)
}

func (s *ImporterTestSuite) TestEmptyRunSucceeds() {
	ctx := context.Background()

	stats, err := s.importer.Run(ctx, "eventlistings", nil)

	s.Require().NoError(err)
	s.Equal(0, stats.Processed)
	s.Require().Len(s.logs.updated, 1)
	s.Equal(models.SyncStatusSuccess, s.logs.updated[0].Status)
}
