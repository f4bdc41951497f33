package guide

import (
	"fmt"
	"strings"

	"github.com/threerivers/guide/internal/domain"
)

var jobSuggestions = []string{
	"Jobs hiring immediately",
	"Remote jobs in Pittsburgh",
	"Tech jobs downtown",
	"Highest paying openings",
}

// composeJobs answers employment questions. Urgency outranks remote when a
// question mentions both.
func (g *Guide) composeJobs(question string) domain.Answer {
	q := strings.ToLower(question)
	list := g.dir.Jobs()

	angle := "openings"
	switch {
	case containsAny(q, "urgent", "asap", "immediately", "right now"):
		angle = "openings hiring right now"
		list = keep(list, func(j domain.Job) bool { return j.Urgent })
	case containsAny(q, "remote", "from home"):
		angle = "remote openings"
		list = keep(list, func(j domain.Job) bool { return j.Remote })
	default:
		byIntAsc(list, func(j domain.Job) int { return -j.SalaryMax })
	}

	list = topN(list, broadLimit)
	if len(list) == 0 {
		return domain.Answer{
			Text: fmt.Sprintf(
				"I couldn't find any %s matching your criteria. New postings land daily, so check back soon.",
				angle),
			Suggestions: jobSuggestions,
		}
	}

	lines := make([]string, 0, len(list))
	for _, j := range list {
		remote := ""
		if j.Remote {
			remote = "remote"
		}
		urgent := ""
		if j.Urgent {
			urgent = "hiring now"
		}
		lines = append(lines, line(j.Title,
			j.Company,
			j.Neighborhood,
			salaryRange(j.SalaryMin, j.SalaryMax),
			remote,
			urgent,
		))
	}

	return domain.Answer{
		Text: answer(
			fmt.Sprintf("Here are the %s worth a look:", angle),
			lines,
			"Want a specific field or salary range? Just ask."),
		Suggestions: jobSuggestions,
	}
}
