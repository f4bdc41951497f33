// Package catalog provides the in-memory Pittsburgh listing catalogs.
// All collections are loaded once at construction and are read-only;
// accessors return copies so callers can never mutate the source data.
package catalog

import (
	"strings"
	"time"

	"github.com/threerivers/guide/internal/domain"
)

// Catalog holds every fixture collection served by the guide.
type Catalog struct {
	now           func() time.Time
	restaurants   []domain.Restaurant
	events        []domain.Event
	neighborhoods []domain.Neighborhood
	apartments    []domain.Apartment
	jobs          []domain.Job
	activities    []domain.Activity
	attractions   []domain.Attraction
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithClock overrides the time source. Used by tests to pin "today".
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.now = now
	}
}

// New builds the catalog, materializing event times against the clock.
func New(opts ...Option) *Catalog {
	c := &Catalog{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	c.restaurants = restaurantFixtures
	c.events = buildEvents(c.now())
	c.neighborhoods = neighborhoodFixtures
	c.apartments = apartmentFixtures
	c.jobs = jobFixtures
	c.activities = activityFixtures
	c.attractions = attractionFixtures
	return c
}

// Restaurants returns all dining listings.
func (c *Catalog) Restaurants() []domain.Restaurant {
	return copySlice(c.restaurants)
}

// Events returns all upcoming events.
func (c *Catalog) Events() []domain.Event {
	return copySlice(c.events)
}

// EventsToday returns events starting on the current calendar day.
func (c *Catalog) EventsToday() []domain.Event {
	now := c.now()
	out := make([]domain.Event, 0, len(c.events))
	for _, e := range c.events {
		if sameDay(e.Start, now) {
			out = append(out, e)
		}
	}
	return out
}

// EventsThisWeekend returns events on the current week's Saturday or Sunday
// (today counts when it already is the weekend).
func (c *Catalog) EventsThisWeekend() []domain.Event {
	now := c.now()
	sat := nextWeekday(now, time.Saturday)
	sun := nextWeekday(now, time.Sunday)
	out := make([]domain.Event, 0, len(c.events))
	for _, e := range c.events {
		if sameDay(e.Start, sat) || sameDay(e.Start, sun) {
			out = append(out, e)
		}
	}
	return out
}

// Neighborhoods returns all district listings.
func (c *Catalog) Neighborhoods() []domain.Neighborhood {
	return copySlice(c.neighborhoods)
}

// FindNeighborhood scans free text for a known neighborhood name or slug and
// returns the matching record. Longer names are checked first so
// "east liberty" wins over any shorter overlap.
func (c *Catalog) FindNeighborhood(text string) (domain.Neighborhood, bool) {
	lower := strings.ToLower(text)

	var best domain.Neighborhood
	bestLen := 0
	for name, slug := range neighborhoodSlugs {
		if len(name) <= bestLen {
			continue
		}
		if strings.Contains(lower, name) || strings.Contains(lower, slug) {
			n, ok := c.neighborhoodBySlug(slug)
			if !ok {
				// Known name without a full district record; enough for
				// scoping listings and labeling the answer.
				n = domain.Neighborhood{Name: displayName(slug), Slug: slug}
			}
			best = n
			bestLen = len(name)
		}
	}
	return best, bestLen > 0
}

func (c *Catalog) neighborhoodBySlug(slug string) (domain.Neighborhood, bool) {
	for _, n := range c.neighborhoods {
		if n.Slug == slug {
			return n, true
		}
	}
	return domain.Neighborhood{}, false
}

// Apartments returns all rental listings.
func (c *Catalog) Apartments() []domain.Apartment {
	return copySlice(c.apartments)
}

// Jobs returns all employment listings.
func (c *Catalog) Jobs() []domain.Job {
	return copySlice(c.jobs)
}

// Activities returns all things-to-do listings.
func (c *Catalog) Activities() []domain.Activity {
	return copySlice(c.activities)
}

// Attractions returns all landmark listings.
func (c *Catalog) Attractions() []domain.Attraction {
	return copySlice(c.attractions)
}

func copySlice[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
