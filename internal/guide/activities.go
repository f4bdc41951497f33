package guide

import (
	"fmt"
	"strings"

	"github.com/threerivers/guide/internal/catalog"
	"github.com/threerivers/guide/internal/domain"
)

var activitySuggestions = []string{
	"Things to do with kids",
	"Rainy day activities",
	"Free things to do",
	"Outdoor adventures in Pittsburgh",
}

// composeActivities answers things-to-do questions.
func (g *Guide) composeActivities(question string) domain.Answer {
	q := strings.ToLower(question)
	list := g.dir.Activities()

	angle := "things to do"
	switch {
	case containsAny(q, "kids", "kid", "toddler", "children", "family"):
		angle = "things to do with kids"
		list = keep(list, func(a domain.Activity) bool { return a.KidFriendly })
	case containsAny(q, "indoor", "rain", "winter", "cold"):
		angle = "indoor picks"
		list = keep(list, func(a domain.Activity) bool { return a.HasTag(catalog.TagIndoor) })
	case containsAny(q, "free", "cheap"):
		angle = "free things to do"
		list = keep(list, func(a domain.Activity) bool { return a.HasTag(catalog.TagFree) })
	}

	byRatingDesc(list, func(a domain.Activity) float64 { return a.Rating })
	list = topN(list, broadLimit)

	if len(list) == 0 {
		return domain.Answer{
			Text: fmt.Sprintf(
				"I couldn't find any %s matching your criteria. Tell me who's going and I'll dig up something better.",
				angle),
			Suggestions: activitySuggestions,
		}
	}

	lines := make([]string, 0, len(list))
	for _, a := range list {
		ages := ""
		if a.AgeRange != "" && a.AgeRange != "all" {
			ages = "ages " + a.AgeRange
		}
		lines = append(lines, line(a.Name,
			a.Neighborhood,
			ratingMark(a.Rating),
			ages,
			a.Description,
		))
	}

	return domain.Answer{
		Text: answer(
			fmt.Sprintf("Here are the %s I'd recommend:", angle),
			lines,
			"Want more like any of these? Just ask."),
		Suggestions: activitySuggestions,
	}
}
