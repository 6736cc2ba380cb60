package aggregation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/rosecitylabs/pdxevents/internal/models"
)

type FilterTestSuite struct {
	suite.Suite

	// Wednesday, noon
	now time.Time
}

func (s *FilterTestSuite) SetupTest() {
	s.now = time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
}

func TestFilterTestSuite(t *testing.T) {
	suite.Run(t, new(FilterTestSuite))
}

func (s *FilterTestSuite) event(title, venue, category string, start time.Time) ListedEvent {
	return ListedEvent{
		ID:        uuid.New().String(),
		Source:    "eventlistings",
		Title:     title,
		Category:  category,
		VenueName: venue,
		StartTime: start,
	}
}

func (s *FilterTestSuite) TestPastEventsExcluded() {
	events := []ListedEvent{
		s.event("Morning Show", "Aladdin Theater", "music", s.now.Add(-2*time.Hour)),
		s.event("Evening Show", "Aladdin Theater", "music", s.now.Add(6*time.Hour)),
	}

	result := Filter(events, Query{Now: s.now})

	s.Require().Len(result, 1)
	s.Equal("Evening Show", result[0].Title)
	for _, e := range result {
		s.False(e.StartTime.Before(s.now))
	}
}

func (s *FilterTestSuite) TestTodayBucket() {
	today := s.event("Tonight", "Revolution Hall", "music",
		time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC))
	tomorrow := s.event("Tomorrow Morning", "Revolution Hall", "music",
		time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC))

	result := Filter([]ListedEvent{today, tomorrow}, Query{DateFilter: DateFilterToday, Now: s.now})

	s.Require().Len(result, 1)
	s.Equal("Tonight", result[0].Title)
}

func (s *FilterTestSuite) TestTomorrowBucket() {
	today := s.event("Tonight", "Revolution Hall", "music",
		time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC))
	tomorrow := s.event("Tomorrow Morning", "Revolution Hall", "music",
		time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC))

	result := Filter([]ListedEvent{today, tomorrow}, Query{DateFilter: DateFilterTomorrow, Now: s.now})

	s.Require().Len(result, 1)
	s.Equal("Tomorrow Morning", result[0].Title)
}

func (s *FilterTestSuite) TestThisWeekIncludesSundayExcludesMonday() {
	sunday := s.event("Sunday Market", "PSU Park Blocks", "markets",
		time.Date(2026, 3, 8, 23, 0, 0, 0, time.UTC))
	monday := s.event("Monday Show", "Doug Fir", "music",
		time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC))

	result := Filter([]ListedEvent{sunday, monday}, Query{DateFilter: DateFilterThisWeek, Now: s.now})

	s.Require().Len(result, 1)
	s.Equal("Sunday Market", result[0].Title)
}

func (s *FilterTestSuite) TestThisWeekOnSundayCoversOnlyRestOfDay() {
	sundayNoon := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	sundayEvening := s.event("Sunday Jazz", "Jack London Revue", "music",
		time.Date(2026, 3, 8, 19, 0, 0, 0, time.UTC))
	nextWeek := s.event("Tuesday Trivia", "Bar Bar", "nightlife",
		time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC))

	result := Filter([]ListedEvent{sundayEvening, nextWeek}, Query{DateFilter: DateFilterThisWeek, Now: sundayNoon})

	s.Require().Len(result, 1)
	s.Equal("Sunday Jazz", result[0].Title)
}

func (s *FilterTestSuite) TestSearchMatchesTitleOrVenue() {
	events := []ListedEvent{
		s.event("Jazz Night", "Revolution Hall", "music", s.now.Add(time.Hour)),
		s.event("Open Mic", "Jazz Station", "music", s.now.Add(2*time.Hour)),
		s.event("Poetry Slam", "Literary Arts", "arts", s.now.Add(3*time.Hour)),
	}

	result := Filter(events, Query{Search: "JAZZ", Now: s.now})

	s.Require().Len(result, 2)
	s.Equal("Jazz Night", result[0].Title)
	s.Equal("Open Mic", result[1].Title)
}

func (s *FilterTestSuite) TestCategoryFilterAndAllSentinel() {
	events := []ListedEvent{
		s.event("Gallery Walk", "Alberta Arts", "arts", s.now.Add(time.Hour)),
		s.event("Punk Show", "Dante's", "music", s.now.Add(2*time.Hour)),
	}

	arts := Filter(events, Query{Category: "arts", Now: s.now})
	s.Require().Len(arts, 1)
	s.Equal("Gallery Walk", arts[0].Title)

	all := Filter(events, Query{Category: CategoryAll, Now: s.now})
	s.Len(all, 2)
}

func (s *FilterTestSuite) TestSortedAscendingAndStable() {
	sameStart := s.now.Add(4 * time.Hour)
	events := []ListedEvent{
		s.event("Later", "A", "music", s.now.Add(8*time.Hour)),
		s.event("First Tie", "B", "music", sameStart),
		s.event("Second Tie", "C", "music", sameStart),
		s.event("Soonest", "D", "music", s.now.Add(time.Hour)),
	}

	result := Filter(events, Query{Now: s.now})

	s.Require().Len(result, 4)
	s.Equal("Soonest", result[0].Title)
	s.Equal("First Tie", result[1].Title)
	s.Equal("Second Tie", result[2].Title)
	s.Equal("Later", result[3].Title)
}

func (s *FilterTestSuite) TestFromSubmissionJoinsDateAndClocks() {
	sub := models.Submission{
		ID:         uuid.New(),
		Title:      "Basement Show",
		Category:   "music",
		EventDate:  "2026-03-06",
		StartClock: "20:30",
		EndClock:   "23:00",
	}

	listed, err := FromSubmission(sub, time.UTC)

	s.Require().NoError(err)
	s.Equal(OriginUserSubmitted, listed.Source)
	s.Equal(time.Date(2026, 3, 6, 20, 30, 0, 0, time.UTC), listed.StartTime)
	s.Require().NotNil(listed.EndTime)
	s.Equal(time.Date(2026, 3, 6, 23, 0, 0, 0, time.UTC), *listed.EndTime)
}

func (s *FilterTestSuite) TestFromSubmissionWithoutEndClock() {
	sub := models.Submission{
		ID:         uuid.New(),
		Title:      "Art Opening",
		EventDate:  "2026-03-06",
		StartClock: "18:00",
	}

	listed, err := FromSubmission(sub, time.UTC)

	s.Require().NoError(err)
	s.Nil(listed.EndTime)
	s.Equal(DefaultCategory, listed.Category)
}

func (s *FilterTestSuite) TestFromSubmissionRejectsBadDate() {
	sub := models.Submission{
		ID:         uuid.New(),
		Title:      "Mystery Event",
		EventDate:  "soon",
		StartClock: "18:00",
	}

	_, err := FromSubmission(sub, time.UTC)
	s.Error(err)
}

func (s *FilterTestSuite) TestFromEventDefaultsCategory() {
	listed := FromEvent(models.Event{
		ID:        uuid.New(),
		APISource: "eventlistings",
		Title:     "Untagged Event",
		StartTime: s.now.Add(time.Hour),
	})

	s.Equal(DefaultCategory, listed.Category)
}
