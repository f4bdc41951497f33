package guide

import (
	"fmt"
	"sort"
	"strings"

	"github.com/threerivers/guide/internal/domain"
)

// How many listings an answer shows: narrow cuts get fewer, broad ones more.
const (
	narrowLimit = 3
	broadLimit  = 5
)

// containsAny reports whether the lowercased question mentions any of the
// given tokens. Plain substring containment, same as the classifier.
func containsAny(q string, tokens ...string) bool {
	for _, t := range tokens {
		if strings.Contains(q, t) {
			return true
		}
	}
	return false
}

// topN truncates a slice to at most n entries.
func topN[T any](list []T, n int) []T {
	if len(list) > n {
		return list[:n]
	}
	return list
}

// keep returns the entries matching the predicate, preserving order.
func keep[T any](list []T, match func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// byRatingDesc sorts in place, highest rating first. The sort is stable so
// equal ratings keep catalog order.
func byRatingDesc[T any](list []T, rating func(T) float64) {
	sort.SliceStable(list, func(i, j int) bool {
		return rating(list[i]) > rating(list[j])
	})
}

// byIntAsc sorts in place, smallest key first.
func byIntAsc[T any](list []T, key func(T) int) {
	sort.SliceStable(list, func(i, j int) bool {
		return key(list[i]) < key(list[j])
	})
}

// line renders one listing as a markdown bullet line. Empty details are
// skipped.
func line(name string, details ...string) string {
	kept := make([]string, 0, len(details))
	for _, d := range details {
		if d != "" {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		return fmt.Sprintf("**%s**", name)
	}
	return fmt.Sprintf("**%s** - %s", name, strings.Join(kept, ", "))
}

// answer assembles the final markdown: lead-in, blank-line-separated listing
// lines, and a closing call to action.
func answer(leadIn string, lines []string, callToAction string) string {
	parts := make([]string, 0, 3)
	if leadIn != "" {
		parts = append(parts, leadIn)
	}
	if len(lines) > 0 {
		parts = append(parts, strings.Join(lines, "\n\n"))
	}
	if callToAction != "" {
		parts = append(parts, callToAction)
	}
	return strings.Join(parts, "\n\n")
}

// priceMarks renders a price tier as dollar signs ("$$" for tier 2).
func priceMarks(tier int) string {
	if tier < domain.PriceTierMin || tier > domain.PriceTierMax {
		return ""
	}
	return strings.Repeat("$", tier)
}

// ratingMark renders a rating as "4.8/5".
func ratingMark(rating float64) string {
	if rating <= 0 {
		return ""
	}
	return fmt.Sprintf("%.1f/5", rating)
}

// dollars renders an amount with a thousands separator ("$1,450").
func dollars(amount int) string {
	if amount < 1000 {
		return fmt.Sprintf("$%d", amount)
	}
	return fmt.Sprintf("$%d,%03d", amount/1000, amount%1000)
}

// salaryRange renders a salary band in thousands ("$65k-$82k").
func salaryRange(min, max int) string {
	if min <= 0 && max <= 0 {
		return ""
	}
	return fmt.Sprintf("$%dk-$%dk", min/1000, max/1000)
}

// eventTime renders an event start as "Sat Jan 2 at 7 PM".
func eventTime(t domain.Event) string {
	return t.Start.Format("Mon Jan 2 at 3 PM")
}
