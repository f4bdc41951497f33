package catalog

import "github.com/threerivers/guide/internal/domain"

// Neighborhood tags used by the neighborhood sub-filters.
const (
	TagNightlife = "nightlife"
	TagWalkable  = "walkable"
	TagQuiet     = "quiet"
)

// neighborhoodFixtures is the curated district catalog. Slugs must match the
// entries in neighborhoodSlugs.
var neighborhoodFixtures = []domain.Neighborhood{
	{
		Name:           "Lawrenceville",
		Slug:           "lawrenceville",
		Description:    "Rowhouse streets packed with galleries, bars, and some of the city's best kitchens",
		Vibe:           "artsy",
		FamilyFriendly: false,
		MedianRent:     1650,
		Tags:           []string{TagNightlife, TagWalkable},
	},
	{
		Name:           "Squirrel Hill",
		Slug:           "squirrel-hill",
		Description:    "Leafy, diverse, and walkable with great schools and a busy Murray Avenue corridor",
		Vibe:           "residential",
		FamilyFriendly: true,
		MedianRent:     1400,
		Tags:           []string{TagWalkable, TagQuiet},
	},
	{
		Name:           "Shadyside",
		Slug:           "shadyside",
		Description:    "Victorian homes, boutique shopping on Walnut Street, and tree-lined blocks",
		Vibe:           "polished",
		FamilyFriendly: true,
		MedianRent:     1750,
		Tags:           []string{TagWalkable},
	},
	{
		Name:           "Bloomfield",
		Slug:           "bloomfield",
		Description:    "Pittsburgh's Little Italy, with an unpretentious main drag and affordable rents",
		Vibe:           "neighborly",
		FamilyFriendly: true,
		MedianRent:     1200,
		Tags:           []string{TagWalkable, TagQuiet},
	},
	{
		Name:           "South Side",
		Slug:           "south-side",
		Description:    "East Carson Street's bar scene plus flat riverside running trails",
		Vibe:           "rowdy",
		FamilyFriendly: false,
		MedianRent:     1300,
		Tags:           []string{TagNightlife, TagWalkable},
	},
	{
		Name:           "East Liberty",
		Slug:           "east-liberty",
		Description:    "Rapidly redeveloped hub with big-box convenience and a growing tech presence",
		Vibe:           "up-and-coming",
		FamilyFriendly: false,
		MedianRent:     1550,
		Tags:           []string{TagNightlife},
	},
	{
		Name:           "Highland Park",
		Slug:           "highland-park",
		Description:    "Grand entry gardens, the zoo, and quiet streets around the reservoir loop",
		Vibe:           "calm",
		FamilyFriendly: true,
		MedianRent:     1250,
		Tags:           []string{TagQuiet},
	},
	{
		Name:           "Mount Washington",
		Slug:           "mount-washington",
		Description:    "Incline access and the best skyline overlooks in the city",
		Vibe:           "scenic",
		FamilyFriendly: true,
		MedianRent:     1150,
		Tags:           []string{TagQuiet},
	},
	{
		Name:           "Downtown",
		Slug:           "downtown",
		Description:    "The Cultural District's theaters and a compact, transit-rich core",
		Vibe:           "urban",
		FamilyFriendly: false,
		MedianRent:     1900,
		Tags:           []string{TagNightlife, TagWalkable},
	},
	{
		Name:           "Regent Square",
		Slug:           "regent-square",
		Description:    "Small business district at the edge of Frick Park's 644 wooded acres",
		Vibe:           "cozy",
		FamilyFriendly: true,
		MedianRent:     1100,
		Tags:           []string{TagQuiet, TagWalkable},
	},
}
