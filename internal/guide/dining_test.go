package guide_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threerivers/guide/internal/intent"
)

// listingLines returns the markdown bullet lines of an answer.
func listingLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if strings.HasPrefix(l, "**") {
			out = append(out, l)
		}
	}
	return out
}

func TestDining_DateNightInLawrenceville(t *testing.T) {
	t.Parallel()

	g, _ := newGuide()
	got := g.Answer(intent.Dining, "Best date-night restaurant in Lawrenceville")

	assert.Contains(t, got.Text, "Lawrenceville")

	lines := listingLines(got.Text)
	require.NotEmpty(t, lines)
	assert.LessOrEqual(t, len(lines), 3)
	for _, l := range lines {
		assert.Contains(t, l, "Lawrenceville")
	}
	assert.Len(t, got.Suggestions, 4)
}

func TestDining_BrunchFilter(t *testing.T) {
	t.Parallel()

	g, _ := newGuide()
	got := g.Answer(intent.Dining, "where can I get brunch")

	lines := listingLines(got.Text)
	require.NotEmpty(t, lines)
	assert.LessOrEqual(t, len(lines), 5)
	// Highest-rated brunch spot first.
	assert.Contains(t, lines[0], "Driftwood Oven")
	// Non-brunch places must not appear.
	assert.NotContains(t, got.Text, "Gaucho")
}

func TestDining_CheapFilter(t *testing.T) {
	t.Parallel()

	g, _ := newGuide()
	got := g.Answer(intent.Dining, "cheap food please")

	lines := listingLines(got.Text)
	require.NotEmpty(t, lines)
	// Tier 1 places sort ahead of tier 2.
	assert.Contains(t, lines[0], "$")
	assert.NotContains(t, got.Text, "Altius") // tier 4 never qualifies
}

func TestDining_NeighborhoodScopeWithoutSubFilter(t *testing.T) {
	t.Parallel()

	g, _ := newGuide()
	got := g.Answer(intent.Dining, "restaurants in shadyside")

	lines := listingLines(got.Text)
	require.Len(t, lines, 2) // Pamela's and Girasole
	for _, l := range lines {
		assert.Contains(t, l, "Shadyside")
	}
}

func TestDining_SubFilterOrderBrunchBeatsCheap(t *testing.T) {
	t.Parallel()

	g, _ := newGuide()
	// Both triggers present; brunch is evaluated first.
	got := g.Answer(intent.Dining, "cheap brunch")

	assert.Contains(t, got.Text, "brunch")
	// A brunch-tagged tier-3 spot proves the cheap filter did not run.
	assert.Contains(t, got.Text, "The Commoner")
}
