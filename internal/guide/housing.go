package guide

import (
	"fmt"
	"strings"

	"github.com/threerivers/guide/internal/domain"
)

var housingSuggestions = []string{
	"Cheap apartments in Pittsburgh",
	"Pet-friendly rentals",
	"Apartments in Shadyside",
	"What's the average rent here?",
}

// composeHousing answers rental questions. Like dining, a mentioned
// neighborhood scopes the listings before the sub-filters run.
func (g *Guide) composeHousing(question string) domain.Answer {
	q := strings.ToLower(question)
	list := g.dir.Apartments()

	scope := ""
	if hood, ok := g.dir.FindNeighborhood(q); ok {
		list = keep(list, func(a domain.Apartment) bool {
			return strings.EqualFold(a.Neighborhood, hood.Name)
		})
		scope = " in " + hood.Name
	}

	angle := "rentals"
	switch {
	case containsAny(q, "cheap", "budget", "affordable"):
		angle = "budget rentals"
	case containsAny(q, "pet", "dog", "cat"):
		angle = "pet-friendly rentals"
		list = keep(list, func(a domain.Apartment) bool { return a.PetFriendly })
	}

	// Cheapest first regardless of angle; rent is what renters scan for.
	byIntAsc(list, func(a domain.Apartment) int { return a.Rent })
	list = topN(list, broadLimit)

	if len(list) == 0 {
		return domain.Answer{
			Text: fmt.Sprintf(
				"I couldn't find any %s%s matching your criteria. Listings turn over quickly, so it's worth checking back.",
				angle, scope),
			Suggestions: housingSuggestions,
		}
	}

	lines := make([]string, 0, len(list))
	for _, a := range list {
		beds := "studio"
		if a.Beds == 1 {
			beds = "1 bed"
		} else if a.Beds > 1 {
			beds = fmt.Sprintf("%d beds", a.Beds)
		}
		pets := ""
		if a.PetFriendly {
			pets = "pets OK"
		}
		lines = append(lines, line(a.Title,
			a.Neighborhood,
			dollars(a.Rent)+"/mo",
			beds,
			pets,
		))
	}

	return domain.Answer{
		Text: answer(
			fmt.Sprintf("Here are the %s%s I'd start with:", angle, scope),
			lines,
			"Want a different neighborhood or price range? Just ask."),
		Suggestions: housingSuggestions,
	}
}
