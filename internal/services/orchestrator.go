package services

import (
	"context"
	"fmt"
	"log"

	"sialabs/recruiting-agent/internal/models"
	"sialabs/recruiting-agent/internal/prompts"
)

// regenPhase names the orchestrator's progress through one chat turn.
type regenPhase string

const (
	phaseIdle                    regenPhase = "idle"
	phaseAwaitingChatReply       regenPhase = "awaiting_chat_reply"
	phaseAwaitingConsolidation   regenPhase = "awaiting_consolidation"
	phaseAwaitingRegeneratedList regenPhase = "awaiting_regenerated_list"
)

// ChatOutcome is the result of one recruiter chat turn: the persona reply,
// plus the regenerated list and its memo when regeneration was requested and
// succeeded end to end.
type ChatOutcome struct {
	Reply         string
	NewCandidates *models.RegeneratedCandidates
}

// RegenerationOrchestrator sequences a chat turn: persona reply first, then,
// only when requested, consolidation followed by list regeneration. There is
// no commit point until the full pipeline succeeds; on any step failure the
// caller's candidates and memo stay untouched and the error surfaces.
type RegenerationOrchestrator interface {
	HandleChatTurn(ctx context.Context, req models.RecruiterChatRequest) (*ChatOutcome, error)
}

type regenerationOrchestrator struct {
	llm          LLM
	registry     *prompts.Registry
	consolidator FeedbackConsolidator
	sourcer      CandidateSourcer
}

func NewRegenerationOrchestrator(
	llm LLM,
	registry *prompts.Registry,
	consolidator FeedbackConsolidator,
	sourcer CandidateSourcer,
) RegenerationOrchestrator {
	return &regenerationOrchestrator{
		llm:          llm,
		registry:     registry,
		consolidator: consolidator,
		sourcer:      sourcer,
	}
}

// HandleChatTurn implements RegenerationOrchestrator.
func (o *regenerationOrchestrator) HandleChatTurn(ctx context.Context, req models.RecruiterChatRequest) (*ChatOutcome, error) {
	phase := phaseAwaitingChatReply

	candidatesJSON := "No candidates provided"
	if len(req.Candidates) > 0 {
		candidatesJSON = string(req.Candidates)
	}

	// The persona reply always runs, regeneration or not, so the
	// conversation stays visibly responsive.
	system, err := o.registry.Render(prompts.TemplateRecruiterPersona, map[string]string{
		"current_candidates": candidatesJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", phase, err)
	}

	reply, err := o.llm.Complete(ctx, system, req.Messages, ChatOptions{
		Temperature:     0.7,
		MaxOutputTokens: 150,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", phase, err)
	}

	outcome := &ChatOutcome{Reply: reply}
	if !req.ShouldRegenerateCandidates || len(req.Messages) == 0 {
		return outcome, nil
	}

	log.Println("🔄 Starting candidate regeneration...")

	phase = phaseAwaitingConsolidation
	memo, err := o.consolidator.Consolidate(ctx, candidatesJSON, req.AppendedFeedback, req.Messages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", phase, err)
	}
	log.Printf("📝 Consolidated feedback memo (%d characters)\n", len(memo))

	phase = phaseAwaitingRegeneratedList
	candidates, err := o.sourcer.Generate(ctx, req.RoleBrief, memo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", phase, err)
	}

	log.Println("✅ Regeneration completed")
	outcome.NewCandidates = &models.RegeneratedCandidates{
		Candidates:       candidates,
		AppendedFeedback: memo,
	}
	return outcome, nil
}
