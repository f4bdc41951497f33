// Package intent routes free-text questions to a topical category using an
// ordered keyword rule table backed by an Aho-Corasick matcher, so every
// keyword is tested in a single pass over the question.
package intent

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/threerivers/guide/internal/logger"
)

// Result is the outcome of classifying one question.
type Result struct {
	Intent          Intent
	MatchedKeywords []string
}

// Classifier assigns exactly one Intent per question, first-match-wins over
// its rule order. Safe for concurrent use; the matcher is built once.
type Classifier struct {
	rules    []Rule
	matcher  *ahocorasick.Matcher
	keywords []string         // deduplicated, in insertion order
	kwRules  map[string][]int // keyword -> indexes into rules
	log      logger.Logger
}

// NewClassifier builds the matcher from the given rule table.
func NewClassifier(rules []Rule, log logger.Logger) *Classifier {
	c := &Classifier{
		rules:   rules,
		kwRules: make(map[string][]int),
		log:     log,
	}

	for i, rule := range rules {
		for _, kw := range rule.Keywords {
			normalized := strings.ToLower(strings.TrimSpace(kw))
			if normalized == "" {
				continue
			}
			if _, seen := c.kwRules[normalized]; !seen {
				c.keywords = append(c.keywords, normalized)
			}
			c.kwRules[normalized] = append(c.kwRules[normalized], i)
		}
	}

	if len(c.keywords) > 0 {
		c.matcher = ahocorasick.NewStringMatcher(c.keywords)
	}

	if log != nil {
		log.Info("intent classifier initialized",
			logger.Int("rules", len(rules)),
			logger.Int("keywords", len(c.keywords)))
	}

	return c
}

// Classify lower-cases the question, finds every keyword hit in one pass,
// then walks the rule table in priority order and returns the first intent
// with at least one hit. Keyword matching is substring containment, not
// word-boundary matching.
func (c *Classifier) Classify(question string) Result {
	if c.matcher == nil {
		return Result{Intent: Fallback}
	}

	text := strings.ToLower(question)
	hits := c.matcher.Match([]byte(text))

	// Accumulate matched keywords per rule.
	ruleHits := make(map[int][]string)
	for _, hitIndex := range hits {
		if hitIndex >= len(c.keywords) {
			continue
		}
		keyword := c.keywords[hitIndex]
		for _, ruleIdx := range c.kwRules[keyword] {
			ruleHits[ruleIdx] = append(ruleHits[ruleIdx], keyword)
		}
	}

	// First rule with a hit wins.
	for i, rule := range c.rules {
		if matched, ok := ruleHits[i]; ok {
			if c.log != nil {
				c.log.Debug("question classified",
					logger.String("intent", string(rule.Intent)),
					logger.Strings("keywords", matched))
			}
			return Result{Intent: rule.Intent, MatchedKeywords: matched}
		}
	}

	return Result{Intent: Fallback}
}
