package aggregation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rosecitylabs/pdxevents/internal/models"
)

const (
	OriginUserSubmitted = "user_submitted"

	CategoryAll     = "all"
	DefaultCategory = "entertainment"
)

const (
	DateFilterAll      = "all"
	DateFilterToday    = "today"
	DateFilterTomorrow = "tomorrow"
	DateFilterThisWeek = "this-week"
)

// ListedEvent is the unified view model served to clients. Synced events
// and approved user submissions are both mapped into this shape before
// filtering, so call sites never branch on the source.
type ListedEvent struct {
	ID            string     `json:"id"`
	Source        string     `json:"source"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	VenueName     string     `json:"venue_name"`
	VenueAddress  string     `json:"venue_address"`
	VenueCity     string     `json:"venue_city"`
	VenueState    string     `json:"venue_state"`
	VenueZip      string     `json:"venue_zip"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	PriceDisplay  string     `json:"price_display"`
	PriceMin      *float64   `json:"price_min,omitempty"`
	PriceMax      *float64   `json:"price_max,omitempty"`
	ImageURL      string     `json:"image_url"`
	TicketURL     string     `json:"ticket_url"`
	OrganizerName string     `json:"organizer_name"`
}

func FromEvent(e models.Event) ListedEvent {
	category := e.Category
	if category == "" {
		category = DefaultCategory
	}
	return ListedEvent{
		ID:            e.ID.String(),
		Source:        e.APISource,
		Title:         e.Title,
		Description:   e.Description,
		Category:      category,
		VenueName:     e.VenueName,
		VenueAddress:  e.VenueAddress,
		VenueCity:     e.VenueCity,
		VenueState:    e.VenueState,
		VenueZip:      e.VenueZip,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		PriceDisplay:  e.PriceDisplay,
		PriceMin:      e.PriceMin,
		PriceMax:      e.PriceMax,
		ImageURL:      e.ImageURL,
		TicketURL:     e.TicketURL,
		OrganizerName: e.OrganizerName,
	}
}

// FromSubmission joins the submission's date and clock fields into
// timestamps. The end time is set only when both a start and an end clock
// are present.
func FromSubmission(s models.Submission, loc *time.Location) (ListedEvent, error) {
	start, err := joinDateClock(s.EventDate, s.StartClock, loc)
	if err != nil {
		return ListedEvent{}, fmt.Errorf("submission %s: %w", s.ID, err)
	}

	var end *time.Time
	if s.StartClock != "" && s.EndClock != "" {
		e, err := joinDateClock(s.EventDate, s.EndClock, loc)
		if err == nil {
			end = &e
		}
	}

	category := s.Category
	if category == "" {
		category = DefaultCategory
	}

	return ListedEvent{
		ID:            s.ID.String(),
		Source:        OriginUserSubmitted,
		Title:         s.Title,
		Description:   s.Description,
		Category:      category,
		VenueName:     s.VenueName,
		VenueAddress:  s.VenueAddress,
		VenueCity:     s.VenueCity,
		VenueState:    s.VenueState,
		VenueZip:      s.VenueZip,
		StartTime:     start,
		EndTime:       end,
		PriceDisplay:  s.PriceDisplay,
		ImageURL:      s.ImageURL,
		TicketURL:     s.TicketURL,
		OrganizerName: s.OrganizerName,
	}, nil
}

func joinDateClock(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
}

// Query holds the aggregator's filter parameters. Now is the moment of the
// query; only events starting at or after it are returned.
type Query struct {
	Search     string
	Category   string
	DateFilter string
	Now        time.Time
}

// Filter applies the search, category and date-bucket filters to a merged
// event list and returns it sorted ascending by start time. The sort is
// stable, so composite-order ties keep their original relative order.
func Filter(events []ListedEvent, q Query) []ListedEvent {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	filtered := make([]ListedEvent, 0, len(events))
	for _, e := range events {
		if e.StartTime.Before(q.Now) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Title), search) &&
			!strings.Contains(strings.ToLower(e.VenueName), search) {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll && e.Category != q.Category {
			continue
		}
		if !matchesDateFilter(e.StartTime, q.DateFilter, q.Now) {
			continue
		}
		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].StartTime.Before(filtered[j].StartTime)
	})

	return filtered
}

func matchesDateFilter(start time.Time, filter string, now time.Time) bool {
	switch filter {
	case DateFilterToday:
		return sameDay(start, now)
	case DateFilterTomorrow:
		return sameDay(start, now.AddDate(0, 0, 1))
	case DateFilterThisWeek:
		return start.Before(endOfWeek(now))
	default:
		return true
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// endOfWeek returns the exclusive upper bound of the current Monday-based
// calendar week: midnight at the start of the following Monday. On a Sunday
// this covers only the remainder of that day.
func endOfWeek(now time.Time) time.Time {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	year, month, day := now.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	return startOfDay.AddDate(0, 0, 7-weekday+1)
}
