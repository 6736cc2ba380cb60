package syncer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rosecitylabs/pdxevents/internal/models"
)

const (
	DefaultTitle    = "Untitled Event"
	DefaultCity     = "Portland"
	DefaultState    = "Oregon"
	DefaultCategory = "entertainment"
)

// ProviderEvent is the loose shape the event-listing provider sends.
// Every field is optional; MapEvent fills in explicit defaults.
type ProviderEvent struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	CategoryID    *int     `json:"category_id"`
	Category      string   `json:"category"`
	VenueName     string   `json:"venue_name"`
	VenueAddress  string   `json:"venue_address"`
	VenueCity     string   `json:"venue_city"`
	VenueState    string   `json:"venue_state"`
	VenueZip      string   `json:"venue_zip"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	PriceDisplay  string   `json:"price_display"`
	PriceMin      *float64 `json:"price_min"`
	PriceMax      *float64 `json:"price_max"`
	ImageURL      string   `json:"image_url"`
	TicketURL     string   `json:"ticket_url"`
	OrganizerName string   `json:"organizer_name"`
}

// categoryTags translates the provider's numeric category ids into the
// internal category tags used by the aggregator.
var categoryTags = map[int]string{
	1:  "music",
	2:  "arts",
	3:  "food-drink",
	4:  "sports",
	5:  "community",
	6:  "family",
	7:  "nightlife",
	8:  "film",
	9:  "comedy",
	10: "markets",
}

// CategoryTag resolves a provider category id, defaulting to
// "entertainment" on a lookup miss.
func CategoryTag(id *int) string {
	if id == nil {
		return DefaultCategory
	}
	tag, ok := categoryTags[*id]
	if !ok {
		return DefaultCategory
	}
	return tag
}

// MapEvent converts one provider record into the internal event shape with
// field-by-field defaults. An external id is synthesized from the source
// tag, the current timestamp and a random suffix when the record lacks one.
func MapEvent(src ProviderEvent, source string, now time.Time) models.Event {
	title := strings.TrimSpace(src.Title)
	if title == "" {
		title = DefaultTitle
	}

	category := strings.TrimSpace(src.Category)
	if category == "" {
		category = CategoryTag(src.CategoryID)
	}

	city := strings.TrimSpace(src.VenueCity)
	if city == "" {
		city = DefaultCity
	}
	state := strings.TrimSpace(src.VenueState)
	if state == "" {
		state = DefaultState
	}

	externalID := strings.TrimSpace(src.ID)
	if externalID == "" {
		externalID = synthesizeExternalID(source, now)
	}

	start, err := time.Parse(time.RFC3339, src.StartTime)
	if err != nil {
		start = now
	}

	var end *time.Time
	if src.EndTime != "" {
		if e, err := time.Parse(time.RFC3339, src.EndTime); err == nil {
			end = &e
		}
	}

	return models.Event{
		ExternalID:    externalID,
		APISource:     source,
		Title:         title,
		Description:   src.Description,
		Category:      category,
		VenueName:     src.VenueName,
		VenueAddress:  src.VenueAddress,
		VenueCity:     city,
		VenueState:    state,
		VenueZip:      src.VenueZip,
		StartTime:     start,
		EndTime:       end,
		PriceDisplay:  src.PriceDisplay,
		PriceMin:      src.PriceMin,
		PriceMax:      src.PriceMax,
		ImageURL:      src.ImageURL,
		TicketURL:     src.TicketURL,
		OrganizerName: src.OrganizerName,
	}
}

func synthesizeExternalID(source string, now time.Time) string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s-%d-%s", source, now.Unix(), suffix)
}
