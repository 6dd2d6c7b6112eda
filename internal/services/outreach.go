package services

import (
	"context"
	"encoding/json"
	"fmt"

	"sialabs/recruiting-agent/internal/models"
	"sialabs/recruiting-agent/internal/prompts"
)

// OutreachEmail is a generated subject line plus an HTML body restricted to
// <p> paragraphs.
type OutreachEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// OutreachService drafts the candidate outreach email for a role.
type OutreachService interface {
	Generate(ctx context.Context, roleBrief string, questions []models.ScreeningQuestion) (*OutreachEmail, error)
}

type outreachService struct {
	llm      LLM
	registry *prompts.Registry
}

func NewOutreachService(llm LLM, registry *prompts.Registry) OutreachService {
	return &outreachService{llm: llm, registry: registry}
}

// Generate implements OutreachService. There is no sensible default for a
// failed draft, so both upstream and parse failures surface as errors.
func (s *outreachService) Generate(ctx context.Context, roleBrief string, questions []models.ScreeningQuestion) (*OutreachEmail, error) {
	prompt, err := s.registry.Render(prompts.TemplateOutreachEmail, map[string]string{
		"role_brief":          roleBrief,
		"screening_questions": FormatScreeningQuestions(questions),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render outreach prompt: %w", err)
	}

	turns := []models.ConversationTurn{{Role: models.RoleUser, Content: prompt}}
	response, err := s.llm.Complete(ctx, "", turns, ChatOptions{
		Temperature:     0.7,
		MaxOutputTokens: 1000,
	})
	if err != nil {
		return nil, fmt.Errorf("outreach email generation failed: %w", err)
	}

	var email OutreachEmail
	if err := json.Unmarshal([]byte(RepairJSON(extractJSON(response))), &email); err != nil {
		return nil, fmt.Errorf("failed to parse outreach email response: %w", err)
	}
	if email.Subject == "" && email.Body == "" {
		return nil, fmt.Errorf("outreach email response missing subject and body")
	}

	return &email, nil
}
