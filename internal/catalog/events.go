package catalog

import (
	"time"

	"github.com/threerivers/guide/internal/domain"
)

// eventSchedule describes a fixture event relative to the catalog load time.
// Events are materialized into concrete times by buildEvents.
type eventSchedule struct {
	title        string
	venue        string
	neighborhood string
	daysOut      int // 0 = today, sat/sun flags below override
	hour         int
	onSaturday   bool
	onSunday     bool
	category     string
	free         bool
}

var eventSchedules = []eventSchedule{
	{
		title:        "Night Market",
		venue:        "Butler Street",
		neighborhood: "Lawrenceville",
		daysOut:      0,
		hour:         18,
		category:     "market",
		free:         true,
	},
	{
		title:        "Symphony Pops: Movie Scores",
		venue:        "Heinz Hall",
		neighborhood: "Downtown",
		daysOut:      0,
		hour:         19,
		category:     "music",
	},
	{
		title:        "Gallery Crawl",
		venue:        "Cultural District",
		neighborhood: "Downtown",
		onSaturday:   true,
		hour:         17,
		category:     "art",
		free:         true,
	},
	{
		title:        "Farmers Market at the Yards",
		venue:        "Bakery Square",
		neighborhood: "East Liberty",
		onSaturday:   true,
		hour:         9,
		category:     "market",
		free:         true,
	},
	{
		title:        "Vinyl Sunday",
		venue:        "Spirit Hall",
		neighborhood: "Lawrenceville",
		onSunday:     true,
		hour:         12,
		category:     "music",
		free:         true,
	},
	{
		title:        "Riverhounds Home Match",
		venue:        "Highmark Stadium",
		neighborhood: "South Side",
		daysOut:      3,
		hour:         19,
		category:     "sports",
	},
	{
		title:        "Banjo Night",
		venue:        "Elks Lodge #11",
		neighborhood: "North Shore",
		daysOut:      4,
		hour:         20,
		category:     "music",
		free:         true,
	},
	{
		title:        "Pierogi Fest",
		venue:        "Kennywood",
		neighborhood: "West Mifflin",
		daysOut:      12,
		hour:         11,
		category:     "food",
	},
}

// buildEvents materializes the schedule against the given load time.
// Day-of-week entries land on the current week's Saturday/Sunday (today if it
// already is that day), so weekend queries always have candidates.
func buildEvents(now time.Time) []domain.Event {
	events := make([]domain.Event, 0, len(eventSchedules))
	for _, s := range eventSchedules {
		var day time.Time
		switch {
		case s.onSaturday:
			day = nextWeekday(now, time.Saturday)
		case s.onSunday:
			day = nextWeekday(now, time.Sunday)
		default:
			day = now.AddDate(0, 0, s.daysOut)
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), s.hour, 0, 0, 0, now.Location())
		events = append(events, domain.Event{
			Title:        s.title,
			Venue:        s.venue,
			Neighborhood: s.neighborhood,
			Start:        start,
			Category:     s.category,
			Free:         s.free,
		})
	}
	return events
}

// nextWeekday returns the next occurrence of the given weekday, counting
// today as a match.
func nextWeekday(now time.Time, day time.Weekday) time.Time {
	offset := (int(day) - int(now.Weekday()) + 7) % 7
	return now.AddDate(0, 0, offset)
}
