package guide

import (
	"fmt"
	"strings"

	"github.com/threerivers/guide/internal/catalog"
	"github.com/threerivers/guide/internal/domain"
)

var diningSuggestions = []string{
	"Best brunch spots in Pittsburgh",
	"Romantic date night restaurants",
	"Cheap eats near me",
	"Where to eat in Lawrenceville",
}

// composeDining answers restaurant questions. A mentioned neighborhood scopes
// the whole catalog first; after that the sub-filters run in order and the
// first one whose trigger appears in the question wins.
func (g *Guide) composeDining(question string) domain.Answer {
	q := strings.ToLower(question)
	list := g.dir.Restaurants()

	scope := ""
	if hood, ok := g.dir.FindNeighborhood(q); ok {
		list = keep(list, func(r domain.Restaurant) bool {
			return strings.EqualFold(r.Neighborhood, hood.Name)
		})
		scope = " in " + hood.Name
	}

	flavor := "restaurants"
	limit := broadLimit
	switch {
	case containsAny(q, "brunch", "breakfast"):
		flavor = "brunch spots"
		list = keep(list, func(r domain.Restaurant) bool { return r.HasTag(catalog.TagBrunch) })
		byRatingDesc(list, func(r domain.Restaurant) float64 { return r.Rating })
	case containsAny(q, "date", "romantic", "anniversary"):
		flavor = "date night picks"
		limit = narrowLimit
		list = keep(list, func(r domain.Restaurant) bool {
			return r.HasTag(catalog.TagDateNight) || r.PriceTier >= 3
		})
		byRatingDesc(list, func(r domain.Restaurant) float64 { return r.Rating })
	case containsAny(q, "cheap", "budget", "affordable"):
		flavor = "cheap eats"
		list = keep(list, func(r domain.Restaurant) bool { return r.PriceTier <= 2 })
		byIntAsc(list, func(r domain.Restaurant) int { return r.PriceTier })
	default:
		byRatingDesc(list, func(r domain.Restaurant) float64 { return r.Rating })
	}

	list = topN(list, limit)
	if len(list) == 0 {
		return domain.Answer{
			Text: fmt.Sprintf(
				"I couldn't find any %s%s matching your criteria. Try broadening the search - Pittsburgh has a lot more kitchens than people expect.",
				flavor, scope),
			Suggestions: diningSuggestions,
		}
	}

	lines := make([]string, 0, len(list))
	for _, r := range list {
		lines = append(lines, line(r.Name,
			r.Cuisine,
			r.Neighborhood,
			priceMarks(r.PriceTier),
			ratingMark(r.Rating),
			r.Description,
		))
	}

	return domain.Answer{
		Text: answer(
			fmt.Sprintf("Here are my top %s%s:", flavor, scope),
			lines,
			"Want hours, reservations, or something in a different part of town? Just ask."),
		Suggestions: diningSuggestions,
	}
}
