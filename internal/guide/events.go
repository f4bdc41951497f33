package guide

import (
	"fmt"
	"sort"
	"strings"

	"github.com/threerivers/guide/internal/domain"
)

var eventSuggestions = []string{
	"What's happening today?",
	"Events this weekend",
	"Free events in Pittsburgh",
	"Live music tonight",
}

// composeEvents answers what's-happening questions. The temporal sub-filters
// swap in a narrower event window; "free" filters the full calendar.
func (g *Guide) composeEvents(question string) domain.Answer {
	q := strings.ToLower(question)

	var list []domain.Event
	window := "soon"
	switch {
	case containsAny(q, "today", "tonight"):
		window = "today"
		list = g.dir.EventsToday()
	case containsAny(q, "weekend", "saturday", "sunday"):
		window = "this weekend"
		list = g.dir.EventsThisWeekend()
	case containsAny(q, "free"):
		window = "for free"
		list = keep(g.dir.Events(), func(e domain.Event) bool { return e.Free })
	default:
		list = g.dir.Events()
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].Start.Before(list[j].Start) })
	list = topN(list, broadLimit)

	if len(list) == 0 {
		return domain.Answer{
			Text: fmt.Sprintf(
				"I couldn't find any events %s matching your criteria. The calendar updates all the time, so check back soon.",
				window),
			Suggestions: eventSuggestions,
		}
	}

	lines := make([]string, 0, len(list))
	for _, e := range list {
		free := ""
		if e.Free {
			free = "free"
		}
		lines = append(lines, line(e.Title,
			e.Venue,
			e.Neighborhood,
			eventTime(e),
			free,
		))
	}

	return domain.Answer{
		Text: answer(
			fmt.Sprintf("Here's what's happening %s in Pittsburgh:", window),
			lines,
			"Want details on any of these, or a different day? Just ask."),
		Suggestions: eventSuggestions,
	}
}
