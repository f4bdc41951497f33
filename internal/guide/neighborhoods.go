package guide

import (
	"fmt"
	"strings"

	"github.com/threerivers/guide/internal/catalog"
	"github.com/threerivers/guide/internal/domain"
)

var neighborhoodSuggestions = []string{
	"Family-friendly neighborhoods",
	"Most affordable neighborhoods",
	"Best areas for nightlife",
	"Where should I live in Pittsburgh?",
}

// composeNeighborhoods answers where-to-live questions.
func (g *Guide) composeNeighborhoods(question string) domain.Answer {
	q := strings.ToLower(question)
	list := g.dir.Neighborhoods()

	angle := "neighborhoods"
	limit := broadLimit
	switch {
	case containsAny(q, "family", "kids", "school"):
		angle = "family-friendly neighborhoods"
		limit = narrowLimit
		list = keep(list, func(n domain.Neighborhood) bool { return n.FamilyFriendly })
	case containsAny(q, "cheap", "affordable", "budget"):
		angle = "affordable neighborhoods"
		byIntAsc(list, func(n domain.Neighborhood) int { return n.MedianRent })
	case containsAny(q, "nightlife", "bar", "young", "student"):
		angle = "neighborhoods for going out"
		list = keep(list, func(n domain.Neighborhood) bool { return n.HasTag(catalog.TagNightlife) })
	}

	list = topN(list, limit)
	if len(list) == 0 {
		return domain.Answer{
			Text: fmt.Sprintf(
				"I couldn't find any %s matching your criteria. Tell me more about what you're looking for and I'll narrow it down.",
				angle),
			Suggestions: neighborhoodSuggestions,
		}
	}

	lines := make([]string, 0, len(list))
	for _, n := range list {
		rent := ""
		if n.MedianRent > 0 {
			rent = fmt.Sprintf("median rent around %s/mo", dollars(n.MedianRent))
		}
		lines = append(lines, line(n.Name,
			n.Vibe,
			rent,
			n.Description,
		))
	}

	return domain.Answer{
		Text: answer(
			fmt.Sprintf("Here are the %s I'd point you to:", angle),
			lines,
			"Want a feel for any of these blocks, or rental listings there? Just ask."),
		Suggestions: neighborhoodSuggestions,
	}
}
