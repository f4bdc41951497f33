// Package guide composes natural-language answers for classified questions.
// One composer per intent filters, ranks, and renders the relevant catalog
// into markdown plus a fixed set of follow-up suggestions.
package guide

import (
	"github.com/threerivers/guide/internal/domain"
	"github.com/threerivers/guide/internal/intent"
	"github.com/threerivers/guide/internal/logger"
)

// Directory is the read interface the composers consume. All methods return
// fresh copies; composers are free to sort and truncate what they get back.
type Directory interface {
	Restaurants() []domain.Restaurant
	Events() []domain.Event
	EventsToday() []domain.Event
	EventsThisWeekend() []domain.Event
	Neighborhoods() []domain.Neighborhood
	FindNeighborhood(text string) (domain.Neighborhood, bool)
	Apartments() []domain.Apartment
	Jobs() []domain.Job
	Activities() []domain.Activity
	Attractions() []domain.Attraction
}

// Guide answers questions from the directory's catalogs. It holds no
// per-request state; concurrent use is safe.
type Guide struct {
	dir Directory
	log logger.Logger
}

// New creates a guide over the given directory.
func New(dir Directory, log logger.Logger) *Guide {
	return &Guide{dir: dir, log: log}
}

// Answer dispatches to the composer for the classified intent.
func (g *Guide) Answer(in intent.Intent, question string) domain.Answer {
	switch in {
	case intent.Dining:
		return g.composeDining(question)
	case intent.Events:
		return g.composeEvents(question)
	case intent.Neighborhoods:
		return g.composeNeighborhoods(question)
	case intent.Housing:
		return g.composeHousing(question)
	case intent.Jobs:
		return g.composeJobs(question)
	case intent.Activities:
		return g.composeActivities(question)
	case intent.General:
		return g.composeGeneral()
	default:
		return g.composeFallback()
	}
}
