package services

import (
	"context"

	"sialabs/recruiting-agent/internal/models"
)

// mockLLM lets each test script the model's replies without a network.
type mockLLM struct {
	respond  func(ctx context.Context, req PromptRequest) (*ResponseEnvelope, error)
	complete func(ctx context.Context, system string, turns []models.ConversationTurn, opts ChatOptions) (string, error)
}

func (m *mockLLM) Respond(ctx context.Context, req PromptRequest) (*ResponseEnvelope, error) {
	return m.respond(ctx, req)
}

func (m *mockLLM) Complete(ctx context.Context, system string, turns []models.ConversationTurn, opts ChatOptions) (string, error) {
	return m.complete(ctx, system, turns, opts)
}

func respondWithText(text string) func(context.Context, PromptRequest) (*ResponseEnvelope, error) {
	return func(context.Context, PromptRequest) (*ResponseEnvelope, error) {
		return NewTextEnvelope(text), nil
	}
}
