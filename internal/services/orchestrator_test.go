package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sialabs/recruiting-agent/internal/models"
	"sialabs/recruiting-agent/internal/prompts"
)

type mockConsolidator struct {
	consolidate func(ctx context.Context, candidatesJSON, previousFeedback string, turns []models.ConversationTurn) (string, error)
}

func (m *mockConsolidator) Consolidate(ctx context.Context, candidatesJSON, previousFeedback string, turns []models.ConversationTurn) (string, error) {
	return m.consolidate(ctx, candidatesJSON, previousFeedback, turns)
}

type mockSourcer struct {
	generate func(ctx context.Context, roleBrief, appendedFeedback string) (any, error)
}

func (m *mockSourcer) Generate(ctx context.Context, roleBrief, appendedFeedback string) (any, error) {
	return m.generate(ctx, roleBrief, appendedFeedback)
}

func (m *mockSourcer) Enrich(context.Context, string, string, []models.CandidateRecord) {}

func (m *mockSourcer) EnrichOne(context.Context, string, string, string) (any, error) {
	return nil, errors.New("not implemented")
}

func mustRegistry(t *testing.T) *prompts.Registry {
	t.Helper()
	registry, err := prompts.LoadDefault("")
	require.NoError(t, err)
	return registry
}

func chatTurns() []models.ConversationTurn {
	return []models.ConversationTurn{
		{Role: models.RoleUser, Content: "These all look too junior."},
		{Role: models.RoleAssistant, Content: "Got it, aiming more senior."},
	}
}

func TestOrchestrator_ReplyOnly(t *testing.T) {
	llm := &mockLLM{complete: func(_ context.Context, system string, _ []models.ConversationTurn, _ ChatOptions) (string, error) {
		assert.Contains(t, system, "Sia")
		return "Happy to help!", nil
	}}
	consolidator := &mockConsolidator{consolidate: func(context.Context, string, string, []models.ConversationTurn) (string, error) {
		t.Fatal("consolidation must not run without a regeneration request")
		return "", nil
	}}
	sourcer := &mockSourcer{generate: func(context.Context, string, string) (any, error) {
		t.Fatal("regeneration must not run without a regeneration request")
		return nil, nil
	}}

	orch := NewRegenerationOrchestrator(llm, mustRegistry(t), consolidator, sourcer)
	outcome, err := orch.HandleChatTurn(context.Background(), models.RecruiterChatRequest{
		Messages: chatTurns(),
	})

	require.NoError(t, err)
	assert.Equal(t, "Happy to help!", outcome.Reply)
	assert.Nil(t, outcome.NewCandidates)
}

func TestOrchestrator_RegenerationSucceeds(t *testing.T) {
	llm := &mockLLM{complete: func(context.Context, string, []models.ConversationTurn, ChatOptions) (string, error) {
		return "Updated the list! Want to adjust anything else?", nil
	}}
	consolidator := &mockConsolidator{consolidate: func(_ context.Context, candidatesJSON, previousFeedback string, _ []models.ConversationTurn) (string, error) {
		assert.Contains(t, candidatesJSON, "Sarah Chen")
		assert.Equal(t, "MUST HAVE: Go experience", previousFeedback)
		return "MUST HAVE: Go experience, senior level", nil
	}}
	regenerated := []models.CandidateRecord{{}}
	sourcer := &mockSourcer{generate: func(_ context.Context, roleBrief, appendedFeedback string) (any, error) {
		assert.Equal(t, "Staff engineer, Seattle", roleBrief)
		assert.Equal(t, "MUST HAVE: Go experience, senior level", appendedFeedback)
		return regenerated, nil
	}}

	orch := NewRegenerationOrchestrator(llm, mustRegistry(t), consolidator, sourcer)
	outcome, err := orch.HandleChatTurn(context.Background(), models.RecruiterChatRequest{
		Messages:                   chatTurns(),
		Candidates:                 []byte(`[{"candidate":{"full_name":"Sarah Chen"}}]`),
		ShouldRegenerateCandidates: true,
		RoleBrief:                  "Staff engineer, Seattle",
		AppendedFeedback:           "MUST HAVE: Go experience",
	})

	require.NoError(t, err)
	require.NotNil(t, outcome.NewCandidates)
	assert.Equal(t, "MUST HAVE: Go experience, senior level", outcome.NewCandidates.AppendedFeedback)
	assert.Equal(t, regenerated, outcome.NewCandidates.Candidates)
}

func TestOrchestrator_RegenerationSkippedWithoutMessages(t *testing.T) {
	llm := &mockLLM{complete: func(context.Context, string, []models.ConversationTurn, ChatOptions) (string, error) {
		return "Hi there!", nil
	}}
	consolidator := &mockConsolidator{consolidate: func(context.Context, string, string, []models.ConversationTurn) (string, error) {
		t.Fatal("consolidation must not run on an empty conversation")
		return "", nil
	}}
	sourcer := &mockSourcer{generate: func(context.Context, string, string) (any, error) {
		return nil, nil
	}}

	orch := NewRegenerationOrchestrator(llm, mustRegistry(t), consolidator, sourcer)
	outcome, err := orch.HandleChatTurn(context.Background(), models.RecruiterChatRequest{
		ShouldRegenerateCandidates: true,
	})

	require.NoError(t, err)
	assert.Nil(t, outcome.NewCandidates)
}

func TestOrchestrator_ConsolidationFailureAborts(t *testing.T) {
	llm := &mockLLM{complete: func(context.Context, string, []models.ConversationTurn, ChatOptions) (string, error) {
		return "Working on it.", nil
	}}
	consolidator := &mockConsolidator{consolidate: func(context.Context, string, string, []models.ConversationTurn) (string, error) {
		return "", errors.New("model unavailable")
	}}
	sourcer := &mockSourcer{generate: func(context.Context, string, string) (any, error) {
		t.Fatal("regeneration must not run after a failed consolidation")
		return nil, nil
	}}

	orch := NewRegenerationOrchestrator(llm, mustRegistry(t), consolidator, sourcer)
	_, err := orch.HandleChatTurn(context.Background(), models.RecruiterChatRequest{
		Messages:                   chatTurns(),
		ShouldRegenerateCandidates: true,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "awaiting_consolidation")
	assert.Contains(t, err.Error(), "model unavailable")
}

func TestOrchestrator_RegenerationFailureAborts(t *testing.T) {
	llm := &mockLLM{complete: func(context.Context, string, []models.ConversationTurn, ChatOptions) (string, error) {
		return "Working on it.", nil
	}}
	consolidator := &mockConsolidator{consolidate: func(context.Context, string, string, []models.ConversationTurn) (string, error) {
		return "memo", nil
	}}
	sourcer := &mockSourcer{generate: func(context.Context, string, string) (any, error) {
		return nil, errors.New("generation timed out")
	}}

	orch := NewRegenerationOrchestrator(llm, mustRegistry(t), consolidator, sourcer)
	_, err := orch.HandleChatTurn(context.Background(), models.RecruiterChatRequest{
		Messages:                   chatTurns(),
		ShouldRegenerateCandidates: true,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "awaiting_regenerated_list")
}
