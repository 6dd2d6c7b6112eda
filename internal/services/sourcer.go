package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"sialabs/recruiting-agent/internal/models"
)

// CandidateSourcer turns a role brief plus the consolidated feedback memo
// into a candidate list: templated prompt call, payload extraction, schema
// normalization, avatar attachment, and optionally per-candidate enrichment.
type CandidateSourcer interface {
	Generate(ctx context.Context, roleBrief, appendedFeedback string) (any, error)
	Enrich(ctx context.Context, roleBrief, appendedFeedback string, candidates []models.CandidateRecord)
	EnrichOne(ctx context.Context, roleBrief, appendedFeedback, candidateSummary string) (any, error)
}

type candidateSourcer struct {
	llm               LLM
	builder           *PromptBuilder
	avatars           AvatarAssigner
	enrichEnabled     bool
	enrichConcurrency int
}

func NewCandidateSourcer(llm LLM, avatars AvatarAssigner, enrichEnabled bool, enrichConcurrency int) CandidateSourcer {
	if enrichConcurrency < 1 {
		enrichConcurrency = 1
	}
	return &candidateSourcer{
		llm:               llm,
		builder:           NewPromptBuilder(),
		avatars:           avatars,
		enrichEnabled:     enrichEnabled,
		enrichConcurrency: enrichConcurrency,
	}
}

// Generate implements CandidateSourcer. The returned value is a
// []models.CandidateRecord when the payload parsed, or the raw model text
// when it did not, so callers always see something renderable. Only the
// upstream call itself can fail.
func (s *candidateSourcer) Generate(ctx context.Context, roleBrief, appendedFeedback string) (any, error) {
	env, err := s.llm.Respond(ctx, s.builder.CandidateGeneration(roleBrief, appendedFeedback))
	if err != nil {
		return nil, fmt.Errorf("candidate generation call failed: %w", err)
	}

	payload := ExtractCandidatePayload(env)
	switch payload.(type) {
	case nil:
		return nil, nil
	case string:
		log.Println("⚠️  Candidate payload did not parse as JSON, passing raw text through")
		return payload, nil
	}

	rawJSON, err := json.Marshal(payload)
	if err != nil {
		return payload, nil
	}
	candidates, err := models.NormalizeCandidateList(rawJSON)
	if err != nil {
		log.Printf("⚠️  Candidate payload has no recognizable list shape: %v\n", err)
		return payload, nil
	}

	log.Printf("🤖 Generated %d candidates\n", len(candidates))
	s.avatars.Assign(ctx, candidates)

	if s.enrichEnabled {
		s.Enrich(ctx, roleBrief, appendedFeedback, candidates)
	}

	return candidates, nil
}

// Enrich fans out one profile call per candidate. Failures are isolated per
// item: a candidate whose enrichment fails keeps its un-enriched display
// data, and the join always completes.
func (s *candidateSourcer) Enrich(ctx context.Context, roleBrief, appendedFeedback string, candidates []models.CandidateRecord) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.enrichConcurrency)

	for i := range candidates {
		g.Go(func() error {
			summary := candidateSummary(&candidates[i])
			profile, err := s.EnrichOne(gctx, roleBrief, appendedFeedback, summary)
			if err != nil {
				log.Printf("⚠️  Enrichment failed for %q: %v\n", candidates[i].DisplayName(), err)
				return nil
			}

			rawProfile, err := json.Marshal(profile)
			if err != nil {
				return nil
			}
			candidates[i].Candidate.Profile = rawProfile
			return nil
		})
	}

	// Results correlate back by index; per-item errors never fail the join.
	_ = g.Wait()
}

// EnrichOne issues a single profile call and returns the parsed profile, or
// the raw text when the payload did not parse.
func (s *candidateSourcer) EnrichOne(ctx context.Context, roleBrief, appendedFeedback, candidateSummary string) (any, error) {
	env, err := s.llm.Respond(ctx, s.builder.CandidateProfile(roleBrief, appendedFeedback, candidateSummary))
	if err != nil {
		return nil, fmt.Errorf("candidate profile call failed: %w", err)
	}

	payload := ExtractCandidatePayload(env)
	if payload == nil {
		return nil, fmt.Errorf("candidate profile response had no message payload")
	}
	return payload, nil
}

func candidateSummary(record *models.CandidateRecord) string {
	summary, err := json.Marshal(record.Candidate)
	if err != nil {
		return record.DisplayName()
	}
	return string(summary)
}
