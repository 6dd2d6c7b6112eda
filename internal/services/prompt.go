package services

import (
	"fmt"
	"strings"

	"sialabs/recruiting-agent/internal/models"
	"sialabs/recruiting-agent/internal/prompts"
)

// PromptBuilder assembles stored-template requests from caller-supplied
// free text. Content constraints (length, injection safety) are deliberately
// not enforced here.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// CandidateGeneration builds the request that produces a candidate list from
// a role brief plus the consolidated feedback memo (possibly empty).
func (pb *PromptBuilder) CandidateGeneration(roleBrief, appendedFeedback string) PromptRequest {
	return PromptRequest{
		TemplateID: prompts.TemplateCandidateGeneration,
		Version:    "2",
		Variables: map[string]string{
			"role_brief":        roleBrief,
			"appended_feedback": appendedFeedback,
		},
	}
}

// ScreeningQuestions builds the request for the three screening questions.
func (pb *PromptBuilder) ScreeningQuestions(roleBrief string) PromptRequest {
	return PromptRequest{
		TemplateID: prompts.TemplateScreeningQuestions,
		Version:    "1",
		Variables: map[string]string{
			"role_brief": roleBrief,
		},
	}
}

// CandidateProfile builds the per-candidate enrichment request.
func (pb *PromptBuilder) CandidateProfile(roleBrief, appendedFeedback, candidateSummary string) PromptRequest {
	return PromptRequest{
		TemplateID: prompts.TemplateCandidateProfile,
		Version:    "1",
		Variables: map[string]string{
			"role_brief":        roleBrief,
			"appended_feedback": appendedFeedback,
			"candidate_summary": candidateSummary,
		},
	}
}

// FormatScreeningQuestions renders an ordered question list the way the
// outreach prompt expects it.
func FormatScreeningQuestions(questions []models.ScreeningQuestion) string {
	var parts []string
	for i, q := range questions {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, q.Question))
	}
	return strings.Join(parts, "\n")
}
