package guide_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threerivers/guide/internal/intent"
)

func TestJobs_UrgentFilter(t *testing.T) {
	t.Parallel()

	g, _ := newGuide()
	got := g.Answer(intent.Jobs, "I need work asap")

	lines := listingLines(got.Text)
	require.NotEmpty(t, lines)
	for _, l := range lines {
		assert.Contains(t, l, "hiring now")
	}
	assert.NotContains(t, got.Text, "Data Analyst") // not urgent
}

func TestJobs_UrgentBeatsRemote(t *testing.T) {
	t.Parallel()

	g, _ := newGuide()
	got := g.Answer(intent.Jobs, "urgent remote openings")

	// Urgency is the higher-priority sub-filter; none of the urgent
	// fixtures are remote.
	for _, l := range listingLines(got.Text) {
		assert.Contains(t, l, "hiring now")
	}
}

func TestJobs_RemoteFilter(t *testing.T) {
	t.Parallel()

	g, _ := newGuide()
	got := g.Answer(intent.Jobs, "any jobs I can do from home")

	lines := listingLines(got.Text)
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Contains(t, l, "remote")
	}
}

func TestJobs_DefaultSortsBySalary(t *testing.T) {
	t.Parallel()

	g, _ := newGuide()
	got := g.Answer(intent.Jobs, "what jobs are out there")

	lines := listingLines(got.Text)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "Robotics Software Engineer")
	assert.LessOrEqual(t, len(lines), 5)
}
