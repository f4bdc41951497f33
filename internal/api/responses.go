package api

import "github.com/threerivers/guide/internal/domain"

// User-facing error strings. These are part of the wire contract; clients
// match on them.
const (
	errInvalidQuestion = "Invalid question"
	errServer          = "Server error"
	apologyAnswer      = "I apologize, but I encountered an error. Please try rephrasing your question."
)

// AskRequest is the body of POST /api/ai-guide.
type AskRequest struct {
	Question            string           `json:"question"`
	ConversationHistory []domain.Message `json:"conversationHistory"`
}

// AskResponse is the success body: the composed (or enhanced) answer plus
// follow-up suggestions.
type AskResponse struct {
	Answer      string   `json:"answer"`
	Suggestions []string `json:"suggestions"`
}

func toAskResponse(a domain.Answer) AskResponse {
	s := a.Suggestions
	if s == nil {
		s = []string{}
	}
	return AskResponse{Answer: a.Text, Suggestions: s}
}
