package aggregation

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rosecitylabs/pdxevents/internal/models"
)

const (
	DefaultCity  = "Portland"
	DefaultState = "Oregon"
)

// VenueOption is one entry in the de-duplicated venue directory.
type VenueOption struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// CompositeKey derives the identity used to test venue equality across
// the approved-venues table and venues implied by events.
func CompositeKey(name, city, state, zip string) string {
	parts := []string{name, city, state, zip}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "|")
}

// NormalizeVenues merges the approved-venues table with venues implied by
// approved events. Stored venues are inserted first and always win on key
// collision; event-derived venues get a synthesized, stable id that cannot
// collide with a stored venue's random uuid. The result is sorted by name
// with a locale-aware comparison.
func NormalizeVenues(stored []models.Venue, events []ListedEvent) []VenueOption {
	byKey := make(map[string]VenueOption, len(stored)+len(events))
	order := make([]string, 0, len(stored)+len(events))

	for _, v := range stored {
		key := CompositeKey(v.Name, v.City, v.State, v.Zip)
		if _, ok := byKey[key]; ok {
			continue
		}
		byKey[key] = VenueOption{
			ID:      v.ID.String(),
			Name:    v.Name,
			Address: v.Address,
			City:    v.City,
			State:   v.State,
			Zip:     v.Zip,
		}
		order = append(order, key)
	}

	for _, e := range events {
		if strings.TrimSpace(e.VenueName) == "" {
			continue
		}
		city := e.VenueCity
		if city == "" {
			city = DefaultCity
		}
		state := e.VenueState
		if state == "" {
			state = DefaultState
		}
		key := CompositeKey(e.VenueName, city, state, e.VenueZip)
		if _, ok := byKey[key]; ok {
			continue
		}
		byKey[key] = VenueOption{
			ID:      derivedVenueID(key),
			Name:    e.VenueName,
			Address: e.VenueAddress,
			City:    city,
			State:   state,
			Zip:     e.VenueZip,
		}
		order = append(order, key)
	}

	venues := make([]VenueOption, 0, len(byKey))
	for _, key := range order {
		venues = append(venues, byKey[key])
	}

	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(venues, func(i, j int) bool {
		return coll.CompareString(venues[i].Name, venues[j].Name) < 0
	})

	return venues
}

// derivedVenueID is a name-based (v5) uuid with an "event-" prefix, so it
// is stable across requests and can never equal a stored venue's v4 id.
func derivedVenueID(key string) string {
	return "event-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte("venue:"+key)).String()
}
