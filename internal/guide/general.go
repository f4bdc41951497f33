package guide

import (
	"strings"

	"github.com/threerivers/guide/internal/domain"
)

var generalSuggestions = []string{
	"Best restaurants in Pittsburgh",
	"Top attractions to visit",
	"Best neighborhoods to live in",
	"What's happening this weekend?",
}

// composeGeneral answers broad best-of questions with a fixed composite:
// top-rated dining, the headline attractions, and a couple of neighborhoods.
func (g *Guide) composeGeneral() domain.Answer {
	restaurants := g.dir.Restaurants()
	byRatingDesc(restaurants, func(r domain.Restaurant) float64 { return r.Rating })
	restaurants = topN(restaurants, narrowLimit)

	attractions := topN(g.dir.Attractions(), narrowLimit)
	hoods := topN(g.dir.Neighborhoods(), 2)

	var b strings.Builder
	b.WriteString("Here's a quick tour of Pittsburgh's best:\n\n### Where to Eat\n\n")
	for i, r := range restaurants {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(line(r.Name, r.Cuisine, r.Neighborhood, ratingMark(r.Rating)))
	}
	b.WriteString("\n\n### What to See\n\n")
	for i, a := range attractions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(line(a.Name, a.Neighborhood, a.Description))
	}
	b.WriteString("\n\n### Where to Live\n\n")
	for i, n := range hoods {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(line(n.Name, n.Vibe, n.Description))
	}
	b.WriteString("\n\nAsk about any of these and I'll go deeper.")

	return domain.Answer{
		Text:        b.String(),
		Suggestions: generalSuggestions,
	}
}
