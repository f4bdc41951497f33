package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// midweek returns a clock pinned to a Wednesday at noon.
func midweek() func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	}
}

func TestEventsToday(t *testing.T) {
	t.Parallel()

	c := New(WithClock(midweek()))

	today := c.EventsToday()
	require.NotEmpty(t, today)
	for _, e := range today {
		assert.Equal(t, 7, e.Start.Day(), "event %q not on the pinned day", e.Title)
	}
}

func TestEventsThisWeekend(t *testing.T) {
	t.Parallel()

	c := New(WithClock(midweek()))

	weekend := c.EventsThisWeekend()
	require.NotEmpty(t, weekend)
	for _, e := range weekend {
		wd := e.Start.Weekday()
		assert.True(t, wd == time.Saturday || wd == time.Sunday,
			"event %q starts on %s", e.Title, wd)
	}
	// The upcoming Saturday for a Wednesday Jan 7 is Jan 10.
	for _, e := range weekend {
		assert.GreaterOrEqual(t, e.Start.Day(), 10)
		assert.LessOrEqual(t, e.Start.Day(), 11)
	}
}

func TestEventsThisWeekend_SaturdayCountsItself(t *testing.T) {
	t.Parallel()

	saturday := func() time.Time {
		return time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	}
	c := New(WithClock(saturday))

	weekend := c.EventsThisWeekend()
	require.NotEmpty(t, weekend)
	for _, e := range weekend {
		assert.True(t, e.Start.Day() == 10 || e.Start.Day() == 11)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	c := New(WithClock(midweek()))

	first := c.Restaurants()
	require.NotEmpty(t, first)
	originalName := first[0].Name
	first[0].Name = "mutated"

	again := c.Restaurants()
	assert.Equal(t, originalName, again[0].Name)
}

func TestFindNeighborhood(t *testing.T) {
	t.Parallel()

	c := New(WithClock(midweek()))

	tests := []struct {
		name     string
		text     string
		wantSlug string
		wantOK   bool
	}{
		{"exact", "apartments in lawrenceville please", "lawrenceville", true},
		{"alias", "what's good in the strip", "strip-district", true},
		{"two words", "moving to squirrel hill", "squirrel-hill", true},
		{"abbreviated", "views from mt washington", "mount-washington", true},
		{"longest wins", "restaurants in east liberty", "east-liberty", true},
		{"none", "somewhere nice", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := c.FindNeighborhood(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantSlug, got.Slug)
				assert.NotEmpty(t, got.Name)
			}
		})
	}
}

func TestNeighborhoodSlug(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "strip-district", NeighborhoodSlug("The Strip"))
	assert.Equal(t, "mount-washington", NeighborhoodSlug("Mt. Washington"))
	assert.Equal(t, "new-homestead", NeighborhoodSlug("New Homestead"))
	assert.True(t, IsKnownNeighborhood("Squirrel Hill"))
	assert.False(t, IsKnownNeighborhood("Gotham"))
}
