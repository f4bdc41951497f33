package catalog

import "github.com/threerivers/guide/internal/domain"

// Listing tags used by the dining sub-filters.
const (
	TagBrunch    = "brunch"
	TagDateNight = "date-night"
)

// restaurantFixtures is the curated dining catalog. Ordering is not
// meaningful; composers re-sort as needed.
var restaurantFixtures = []domain.Restaurant{
	{
		Name:         "Morcilla",
		Description:  "Spanish small plates and house-cured charcuterie",
		Neighborhood: "Lawrenceville",
		Cuisine:      "Spanish",
		Rating:       4.8,
		PriceTier:    3,
		Tags:         []string{TagDateNight},
	},
	{
		Name:         "Driftwood Oven",
		Description:  "Sourdough pizza and seasonal salads",
		Neighborhood: "Lawrenceville",
		Cuisine:      "Pizza",
		Rating:       4.7,
		PriceTier:    2,
		Tags:         []string{TagBrunch},
	},
	{
		Name:         "Umami",
		Description:  "Japanese izakaya above a record shop",
		Neighborhood: "Lawrenceville",
		Cuisine:      "Japanese",
		Rating:       4.5,
		PriceTier:    3,
		Tags:         []string{TagDateNight},
	},
	{
		Name:         "The Commoner",
		Description:  "Gastropub fare in the Hotel Monaco basement",
		Neighborhood: "Downtown",
		Cuisine:      "American",
		Rating:       4.3,
		PriceTier:    3,
		Tags:         []string{TagBrunch, TagDateNight},
	},
	{
		Name:         "Gaucho Parrilla Argentina",
		Description:  "Wood-fired Argentinian steaks and sandwiches",
		Neighborhood: "Strip District",
		Cuisine:      "Argentinian",
		Rating:       4.9,
		PriceTier:    2,
	},
	{
		Name:         "DeLuca's Diner",
		Description:  "Old-school diner breakfast served all day",
		Neighborhood: "Strip District",
		Cuisine:      "Diner",
		Rating:       4.4,
		PriceTier:    1,
		Tags:         []string{TagBrunch},
	},
	{
		Name:         "Apteka",
		Description:  "Vegan Central European cooking and natural wine",
		Neighborhood: "Bloomfield",
		Cuisine:      "Eastern European",
		Rating:       4.7,
		PriceTier:    2,
		Tags:         []string{TagDateNight},
	},
	{
		Name:         "Pamela's Diner",
		Description:  "Crepe-style hotcakes and famous breakfasts",
		Neighborhood: "Shadyside",
		Cuisine:      "Diner",
		Rating:       4.5,
		PriceTier:    1,
		Tags:         []string{TagBrunch},
	},
	{
		Name:         "Girasole",
		Description:  "Rustic Italian in a cozy garden-level room",
		Neighborhood: "Shadyside",
		Cuisine:      "Italian",
		Rating:       4.4,
		PriceTier:    3,
		Tags:         []string{TagDateNight},
	},
	{
		Name:         "Everyday Noodles",
		Description:  "Hand-pulled noodles and soup dumplings",
		Neighborhood: "Squirrel Hill",
		Cuisine:      "Chinese",
		Rating:       4.6,
		PriceTier:    1,
	},
	{
		Name:         "Altius",
		Description:  "Fine dining with skyline views from Grandview Avenue",
		Neighborhood: "Mount Washington",
		Cuisine:      "American",
		Rating:       4.8,
		PriceTier:    4,
		Tags:         []string{TagDateNight},
	},
	{
		Name:         "The Zenith",
		Description:  "Vegetarian tearoom and antique shop brunch",
		Neighborhood: "South Side",
		Cuisine:      "Vegetarian",
		Rating:       4.2,
		PriceTier:    1,
		Tags:         []string{TagBrunch},
	},
}
