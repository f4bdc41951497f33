package domain

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn supplied by the caller as short-term
// context. Messages are never persisted.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Answer is the composed response for a question: a markdown-flavored answer
// plus a fixed set of follow-up suggestions.
type Answer struct {
	Text        string   `json:"answer"`
	Suggestions []string `json:"suggestions"`
}
