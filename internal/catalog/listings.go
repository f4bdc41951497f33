package catalog

import "github.com/threerivers/guide/internal/domain"

// Activity tags used by the activities sub-filters.
const (
	TagIndoor = "indoor"
	TagFree   = "free"
)

var apartmentFixtures = []domain.Apartment{
	{Title: "Renovated rowhouse floor-through", Neighborhood: "Lawrenceville", Rent: 1700, Beds: 2, Baths: 1, PetFriendly: true},
	{Title: "Walnut Street walk-up", Neighborhood: "Shadyside", Rent: 1450, Beds: 1, Baths: 1},
	{Title: "Murray Avenue duplex", Neighborhood: "Squirrel Hill", Rent: 1350, Beds: 2, Baths: 1.5, PetFriendly: true},
	{Title: "Liberty Avenue studio", Neighborhood: "Bloomfield", Rent: 950, Beds: 0, Baths: 1},
	{Title: "Carson Street loft", Neighborhood: "South Side", Rent: 1250, Beds: 1, Baths: 1, PetFriendly: true},
	{Title: "Grandview Avenue view unit", Neighborhood: "Mount Washington", Rent: 1100, Beds: 1, Baths: 1},
	{Title: "Eastside tower two-bed", Neighborhood: "East Liberty", Rent: 1850, Beds: 2, Baths: 2},
	{Title: "Reservoir-side third floor", Neighborhood: "Highland Park", Rent: 1050, Beds: 1, Baths: 1, PetFriendly: true},
}

var jobFixtures = []domain.Job{
	{Title: "Line Cook", Company: "Strip District Provisions", Neighborhood: "Strip District", SalaryMin: 38000, SalaryMax: 46000, Urgent: true, Category: "hospitality"},
	{Title: "Robotics Software Engineer", Company: "Hazelwood Green Labs", Neighborhood: "Hazelwood", SalaryMin: 115000, SalaryMax: 155000, Category: "technology"},
	{Title: "Registered Nurse", Company: "Oakland Medical Center", Neighborhood: "Oakland", SalaryMin: 72000, SalaryMax: 95000, Urgent: true, Category: "healthcare"},
	{Title: "Data Analyst", Company: "Riverfront Insurance", Neighborhood: "Downtown", SalaryMin: 65000, SalaryMax: 82000, Remote: true, Category: "technology"},
	{Title: "Barista", Company: "Commonplace Coffee", Neighborhood: "Squirrel Hill", SalaryMin: 31000, SalaryMax: 36000, Category: "hospitality"},
	{Title: "Customer Support Specialist", Company: "Bakery Square Software", Neighborhood: "East Liberty", SalaryMin: 48000, SalaryMax: 58000, Remote: true, Category: "technology"},
	{Title: "Warehouse Associate", Company: "Three Rivers Logistics", Neighborhood: "North Shore", SalaryMin: 36000, SalaryMax: 42000, Urgent: true, Category: "logistics"},
}

var activityFixtures = []domain.Activity{
	{Name: "Carnegie Science Center", Neighborhood: "North Shore", Description: "Four floors of hands-on exhibits plus the USS Requin submarine", KidFriendly: true, AgeRange: "3+", Rating: 4.7, Tags: []string{TagIndoor}},
	{Name: "Pittsburgh Zoo & Aquarium", Neighborhood: "Highland Park", Description: "77 acres of animal habitats and an underwater tunnel", KidFriendly: true, AgeRange: "all", Rating: 4.6},
	{Name: "Frick Park Trails", Neighborhood: "Regent Square", Description: "Wooded ravines, off-leash areas, and the Environmental Center", KidFriendly: true, AgeRange: "all", Rating: 4.8, Tags: []string{TagFree}},
	{Name: "Duquesne Incline", Neighborhood: "Mount Washington", Description: "Century-old cable car up to the Grandview overlooks", KidFriendly: true, AgeRange: "all", Rating: 4.8},
	{Name: "Randyland", Neighborhood: "North Side", Description: "Riotously colorful outsider-art courtyard", KidFriendly: true, AgeRange: "all", Rating: 4.5, Tags: []string{TagFree}},
	{Name: "Escape Room Downtown", Neighborhood: "Downtown", Description: "Sixty-minute puzzle rooms for small groups", KidFriendly: false, AgeRange: "13+", Rating: 4.4, Tags: []string{TagIndoor}},
	{Name: "Kayak Pittsburgh", Neighborhood: "North Shore", Description: "Paddle the Allegheny under the Sister Bridges", KidFriendly: true, AgeRange: "8+", Rating: 4.6},
}

var attractionFixtures = []domain.Attraction{
	{Name: "Phipps Conservatory", Neighborhood: "Oakland", Description: "Glasshouse gardens and seasonal flower shows", Rating: 4.8},
	{Name: "Andy Warhol Museum", Neighborhood: "North Shore", Description: "Seven floors devoted to Pittsburgh's most famous son", Rating: 4.6},
	{Name: "Point State Park", Neighborhood: "Downtown", Description: "The fountain at the confluence of the three rivers", Rating: 4.7},
	{Name: "Cathedral of Learning", Neighborhood: "Oakland", Description: "Gothic skyscraper with the Nationality Rooms", Rating: 4.8},
	{Name: "Mattress Factory", Neighborhood: "North Side", Description: "Room-sized installation art in a former warehouse", Rating: 4.5},
}
