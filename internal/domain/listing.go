// Package domain defines the typed listing records served by the guide.
package domain

import "time"

// Price tier bounds for restaurants (1 = cheapest, 4 = most expensive).
const (
	PriceTierMin = 1
	PriceTierMax = 4
)

// Restaurant is a dining listing.
type Restaurant struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	Cuisine      string   `json:"cuisine,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	PriceTier    int      `json:"price_tier,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// HasTag reports whether the restaurant carries the given tag.
func (r Restaurant) HasTag(tag string) bool {
	return hasTag(r.Tags, tag)
}

// Event is a happening with a start time.
type Event struct {
	Title        string    `json:"title"`
	Venue        string    `json:"venue,omitempty"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	Start        time.Time `json:"start"`
	Category     string    `json:"category,omitempty"`
	Free         bool      `json:"free,omitempty"`
}

// Neighborhood is a city district listing.
type Neighborhood struct {
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	Description    string   `json:"description,omitempty"`
	Vibe           string   `json:"vibe,omitempty"`
	FamilyFriendly bool     `json:"family_friendly,omitempty"`
	MedianRent     int      `json:"median_rent,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// HasTag reports whether the neighborhood carries the given tag.
func (n Neighborhood) HasTag(tag string) bool {
	return hasTag(n.Tags, tag)
}

// Apartment is a rental listing.
type Apartment struct {
	Title        string  `json:"title"`
	Neighborhood string  `json:"neighborhood,omitempty"`
	Rent         int     `json:"rent,omitempty"`
	Beds         int     `json:"beds,omitempty"`
	Baths        float64 `json:"baths,omitempty"`
	PetFriendly  bool    `json:"pet_friendly,omitempty"`
}

// Job is an employment listing.
type Job struct {
	Title        string `json:"title"`
	Company      string `json:"company,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	SalaryMin    int    `json:"salary_min,omitempty"`
	SalaryMax    int    `json:"salary_max,omitempty"`
	Remote       bool   `json:"remote,omitempty"`
	Urgent       bool   `json:"urgent,omitempty"`
	Category     string `json:"category,omitempty"`
}

// Activity is a things-to-do listing.
type Activity struct {
	Name         string   `json:"name"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	Description  string   `json:"description,omitempty"`
	KidFriendly  bool     `json:"kid_friendly,omitempty"`
	AgeRange     string   `json:"age_range,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// HasTag reports whether the activity carries the given tag.
func (a Activity) HasTag(tag string) bool {
	return hasTag(a.Tags, tag)
}

// Attraction is a landmark or point of interest.
type Attraction struct {
	Name         string  `json:"name"`
	Neighborhood string  `json:"neighborhood,omitempty"`
	Description  string  `json:"description,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
