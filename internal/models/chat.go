package models

// TurnRole identifies the author of a conversation turn.
type TurnRole string

const (
	RoleUser      TurnRole = "user"
	RoleAssistant TurnRole = "assistant"
)

// ConversationTurn is one message in a refinement chat session. Turns are
// append-only within a session and cleared on explicit restart.
type ConversationTurn struct {
	Role    TurnRole `json:"role"`
	Content string   `json:"content"`
}

// ScreeningQuestion is one user-editable question asked of candidates before
// an introduction.
type ScreeningQuestion struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Intent   string `json:"intent,omitempty"`
}
