package intent

// Intent is the single topical category assigned to a question.
type Intent string

// The closed set of category tags. Exactly one is assigned per question.
const (
	Dining        Intent = "dining"
	Events        Intent = "events"
	Neighborhoods Intent = "neighborhoods"
	Housing       Intent = "housing"
	Jobs          Intent = "jobs"
	Activities    Intent = "activities"
	General       Intent = "general"
	Fallback      Intent = "fallback"
)

// Rule binds an intent to its trigger keywords. Rules are evaluated in slice
// order and the first rule with any keyword hit wins, so the slice itself is
// the priority order.
type Rule struct {
	Intent   Intent
	Keywords []string
}

// DefaultRules returns the production routing table.
//
// The token "live" is deliberately present in both the neighborhoods and
// housing rules; neighborhoods is listed first and therefore always wins for
// questions containing it. Changing that ordering changes user-visible
// routing, so it stays as shipped.
func DefaultRules() []Rule {
	return []Rule{
		{Intent: Dining, Keywords: []string{"restaurant", "eat", "dining", "food"}},
		{Intent: Events, Keywords: []string{"event", "weekend", "today", "happening"}},
		{Intent: Neighborhoods, Keywords: []string{"neighborhood", "area", "live", "move"}},
		{Intent: Housing, Keywords: []string{"apartment", "rent", "housing", "live"}},
		{Intent: Jobs, Keywords: []string{"job", "hire", "career", "work"}},
		{Intent: Activities, Keywords: []string{"activity", "do", "kids", "family"}},
		{Intent: General, Keywords: []string{"best", "top", "recommend"}},
	}
}
