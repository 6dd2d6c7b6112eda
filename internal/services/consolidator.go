package services

import (
	"context"
	"fmt"
	"strings"

	"sialabs/recruiting-agent/internal/models"
	"sialabs/recruiting-agent/internal/prompts"
)

// FeedbackConsolidator merges the running requirements memo with new
// conversational turns. The produced memo is opaque text; it wholesale
// replaces the previous memo and is round-tripped verbatim into the next
// candidate generation call.
type FeedbackConsolidator interface {
	Consolidate(ctx context.Context, candidatesJSON, previousFeedback string, turns []models.ConversationTurn) (string, error)
}

type feedbackConsolidator struct {
	llm      LLM
	registry *prompts.Registry
}

func NewFeedbackConsolidator(llm LLM, registry *prompts.Registry) FeedbackConsolidator {
	return &feedbackConsolidator{llm: llm, registry: registry}
}

// Consolidate implements FeedbackConsolidator. Failure surfaces as an error
// with no retry.
func (c *feedbackConsolidator) Consolidate(ctx context.Context, candidatesJSON, previousFeedback string, turns []models.ConversationTurn) (string, error) {
	if candidatesJSON == "" {
		candidatesJSON = "No candidates provided"
	}

	system, err := c.registry.Render(prompts.TemplateFeedbackConsolidation, map[string]string{
		"current_candidates": candidatesJSON,
		"previous_feedback":  previousFeedback,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render consolidation prompt: %w", err)
	}

	memo, err := c.llm.Complete(ctx, system, turns, ChatOptions{
		Temperature:     0.5,
		MaxOutputTokens: 500,
	})
	if err != nil {
		return "", fmt.Errorf("feedback consolidation failed: %w", err)
	}

	return strings.TrimSpace(memo), nil
}
