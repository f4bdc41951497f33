package guide

import "github.com/threerivers/guide/internal/domain"

var fallbackSuggestions = []string{
	"Best restaurants in Pittsburgh",
	"Events this weekend",
	"Family-friendly neighborhoods",
	"Things to do with kids",
}

const fallbackText = "I'm your Pittsburgh guide! I can help you find " +
	"restaurants, events, neighborhoods, apartments, jobs, and things to do " +
	"around the city. Try asking me something like \"where should I eat in " +
	"Lawrenceville?\" or \"what's happening this weekend?\""

// composeFallback is the static answer for questions no rule matched.
func (g *Guide) composeFallback() domain.Answer {
	return domain.Answer{
		Text:        fallbackText,
		Suggestions: fallbackSuggestions,
	}
}
