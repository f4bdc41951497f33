package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// neighborhoodSlugs maps normalized neighborhood names (including common
// aliases) to their canonical slug. This is a curated list of the Pittsburgh
// neighborhoods covered by the fixture catalogs.
var neighborhoodSlugs = map[string]string{
	"lawrenceville":      "lawrenceville",
	"shadyside":          "shadyside",
	"squirrel hill":      "squirrel-hill",
	"strip district":     "strip-district",
	"the strip":          "strip-district",
	"bloomfield":         "bloomfield",
	"east liberty":       "east-liberty",
	"eastside":           "east-liberty",
	"oakland":            "oakland",
	"south side":         "south-side",
	"southside":          "south-side",
	"downtown":           "downtown",
	"golden triangle":    "downtown",
	"mount washington":   "mount-washington",
	"mt washington":      "mount-washington",
	"mt. washington":     "mount-washington",
	"north shore":        "north-shore",
	"regent square":      "regent-square",
	"highland park":      "highland-park",
	"point breeze":       "point-breeze",
	"polish hill":        "polish-hill",
}

// IsKnownNeighborhood checks if the given name is in the neighborhood list.
func IsKnownNeighborhood(name string) bool {
	if name == "" {
		return false
	}
	_, ok := neighborhoodSlugs[normalizeForLookup(name)]
	return ok
}

// NeighborhoodSlug returns the canonical slug form of a neighborhood name.
// Unknown names get a best-effort slug.
func NeighborhoodSlug(name string) string {
	if name == "" {
		return ""
	}
	if slug, ok := neighborhoodSlugs[normalizeForLookup(name)]; ok {
		return slug
	}
	return toSlug(name)
}

// normalizeForLookup prepares a neighborhood name for map lookup.
func normalizeForLookup(name string) string {
	return removeAccents(strings.ToLower(strings.TrimSpace(name)))
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// toSlug converts a neighborhood name to a URL-safe slug.
func toSlug(name string) string {
	s := removeAccents(strings.ToLower(strings.TrimSpace(name)))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// displayName converts a slug back to a human-readable name
// ("strip-district" -> "Strip District").
func displayName(slug string) string {
	parts := strings.Split(slug, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// removeAccents strips diacritical marks from a string.
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
