package syncer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestMapEventDefaults(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	event := MapEvent(ProviderEvent{}, "eventlistings", now)

	assert.Equal(t, DefaultTitle, event.Title)
	assert.Equal(t, DefaultCity, event.VenueCity)
	assert.Equal(t, DefaultState, event.VenueState)
	assert.Equal(t, DefaultCategory, event.Category)
	assert.Equal(t, "eventlistings", event.APISource)
	assert.Equal(t, now, event.StartTime)
	assert.Nil(t, event.EndTime)
}

func TestMapEventPassesFieldsThrough(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	src := ProviderEvent{
		ID:            "evt-991",
		Title:         "First Thursday",
		Description:   "Gallery openings in the Pearl",
		CategoryID:    intPtr(2),
		VenueName:     "Pearl District",
		VenueCity:     "Portland",
		VenueState:    "Oregon",
		StartTime:     "2026-03-05T18:00:00Z",
		EndTime:       "2026-03-05T21:00:00Z",
		TicketURL:     "https://example.com/tickets",
		OrganizerName: "PADA",
	}

	event := MapEvent(src, "eventlistings", now)

	assert.Equal(t, "evt-991", event.ExternalID)
	assert.Equal(t, "First Thursday", event.Title)
	assert.Equal(t, "arts", event.Category)
	assert.Equal(t, time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC), event.StartTime)
	require.NotNil(t, event.EndTime)
	assert.Equal(t, time.Date(2026, 3, 5, 21, 0, 0, 0, time.UTC), *event.EndTime)
}

func TestCategoryTagLookupMiss(t *testing.T) {
	assert.Equal(t, DefaultCategory, CategoryTag(intPtr(999)))
	assert.Equal(t, DefaultCategory, CategoryTag(nil))
	assert.Equal(t, "music", CategoryTag(intPtr(1)))
}

func TestMapEventExplicitCategoryWinsOverID(t *testing.T) {
	now := time.Now()
	event := MapEvent(ProviderEvent{Category: "comedy", CategoryID: intPtr(1)}, "eventlistings", now)
	assert.Equal(t, "comedy", event.Category)
}

func TestMapEventSynthesizesExternalID(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	a := MapEvent(ProviderEvent{Title: "No ID"}, "eventlistings", now)
	b := MapEvent(ProviderEvent{Title: "No ID"}, "eventlistings", now)

	assert.True(t, strings.HasPrefix(a.ExternalID, "eventlistings-"))
	assert.NotEqual(t, a.ExternalID, b.ExternalID)
}
