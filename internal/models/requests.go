package models

import "encoding/json"

type AnalyzeJobDescriptionRequest struct {
	RoleBrief        string `json:"role_brief"`
	AppendedFeedback string `json:"appended_feedback,omitempty"`
}

// AnalyzeJobDescriptionResponse carries the generated candidate list. On a
// parse fallback the response field degrades to the raw model text, so it is
// typed loosely on purpose.
type AnalyzeJobDescriptionResponse struct {
	Success  bool `json:"success"`
	Response any  `json:"response"`
}

type ScreeningQuestionsRequest struct {
	JobDescription string `json:"jobDescription"`
}

type ScreeningQuestionsResponse struct {
	Success   bool     `json:"success"`
	Questions []string `json:"questions"`
}

type OutreachEmailRequest struct {
	RoleBrief          string              `json:"role_brief"`
	ScreeningQuestions []ScreeningQuestion `json:"screening_questions"`
}

type OutreachEmailResponse struct {
	Success   bool   `json:"success"`
	Subject   string `json:"subject"`
	EmailBody string `json:"emailBody"`
}

type RecruiterChatRequest struct {
	Messages                   []ConversationTurn `json:"messages"`
	Candidates                 json.RawMessage    `json:"candidates,omitempty"`
	ShouldRegenerateCandidates bool               `json:"shouldRegenerateCandidates,omitempty"`
	RoleBrief                  string             `json:"role_brief,omitempty"`
	AppendedFeedback           string             `json:"appended_feedback,omitempty"`
}

// RegeneratedCandidates is the replacement list plus the consolidated memo
// that produced it. Both travel together so the caller can commit or discard
// them as one unit.
type RegeneratedCandidates struct {
	Candidates       any    `json:"candidates"`
	AppendedFeedback string `json:"appended_feedback"`
}

type RecruiterChatResponse struct {
	Success       bool                   `json:"success"`
	Response      string                 `json:"response"`
	NewCandidates *RegeneratedCandidates `json:"newCandidates"`
}

type CandidateProfileRequest struct {
	RoleBrief        string `json:"role_brief"`
	AppendedFeedback string `json:"appended_feedback,omitempty"`
	CandidateSummary string `json:"candidate_summary"`
}

type CandidateProfileResponse struct {
	Success bool `json:"success"`
	Profile any  `json:"profile"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
