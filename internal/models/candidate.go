package models

import (
	"encoding/json"
	"fmt"
)

// FacetState is the evaluation of a single match facet (role, location,
// experience, skills) as returned by the model.
type FacetState string

const (
	FacetMatch   FacetState = "match"
	FacetNoMatch FacetState = "no_match"
)

// Highlight is one emphasized phrase inside a rich "why matched" explanation.
type Highlight struct {
	Phrase   string `json:"phrase"`
	Category string `json:"category,omitempty"`
}

// WhyRich is the structured match explanation with highlighted phrases.
type WhyRich struct {
	Text       string      `json:"text"`
	Highlights []Highlight `json:"highlights,omitempty"`
}

// FacetPill is one facet evaluation pill (label + state).
type FacetPill struct {
	Label string     `json:"label"`
	State FacetState `json:"state"`
}

// MatchInfo carries the model's match narrative for one candidate.
type MatchInfo struct {
	TopMatch   bool        `json:"top_match,omitempty"`
	FacetPills []FacetPill `json:"facet_pills,omitempty"`
	WhySummary string      `json:"why_summary,omitempty"`
	WhyRich    *WhyRich    `json:"why_rich,omitempty"`
}

// CurrentPosition is the candidate's present role.
type CurrentPosition struct {
	Title       string  `json:"title,omitempty"`
	Company     string  `json:"company,omitempty"`
	TenureYears float64 `json:"tenure_years,omitempty"`
}

// CandidateProfile holds the displayable candidate attributes.
type CandidateProfile struct {
	ID              int              `json:"id,omitempty"`
	FullName        string           `json:"full_name,omitempty"`
	Name            string           `json:"name,omitempty"`
	Title           string           `json:"title,omitempty"`
	Company         string           `json:"company,omitempty"`
	Location        string           `json:"location,omitempty"`
	CurrentPosition *CurrentPosition `json:"current_position,omitempty"`
	AvatarURL       string           `json:"avatar_url,omitempty"`
	Summary         string           `json:"summary,omitempty"`
	Profile         json.RawMessage  `json:"profile,omitempty"`
}

// CandidateRecord is one AI-generated candidate plus its match explanation.
// It is replaced wholesale on every regeneration; the only field-level
// mutations are avatar attachment and enrichment.
type CandidateRecord struct {
	Candidate CandidateProfile `json:"candidate"`
	Match     *MatchInfo       `json:"match,omitempty"`
}

// DisplayName resolves the candidate's name across the provider schema
// variants (full_name preferred over name).
func (r *CandidateRecord) DisplayName() string {
	if r.Candidate.FullName != "" {
		return r.Candidate.FullName
	}
	return r.Candidate.Name
}

// candidateVariant mirrors the two provider shapes at once: the nested
// {candidate, match} envelope and the flat candidate object. Exactly one of
// the two is populated for any given payload.
type candidateVariant struct {
	Candidate *CandidateProfile `json:"candidate"`
	Match     *MatchInfo        `json:"match"`
	CandidateProfile
}

// NormalizeCandidate adapts one raw candidate item into the canonical nested
// shape. The provider has historically returned either a flat candidate
// object or a {candidate, match} envelope; both are accepted.
func NormalizeCandidate(raw json.RawMessage) (CandidateRecord, error) {
	var v candidateVariant
	if err := json.Unmarshal(raw, &v); err != nil {
		return CandidateRecord{}, fmt.Errorf("failed to decode candidate item: %w", err)
	}

	if v.Candidate != nil {
		return CandidateRecord{Candidate: *v.Candidate, Match: v.Match}, nil
	}
	return CandidateRecord{Candidate: v.CandidateProfile, Match: v.Match}, nil
}

// NormalizeCandidateList adapts a raw candidate array. Payloads wrapped in a
// {candidates: [...]} or {data: [...]} object are unwrapped first.
func NormalizeCandidateList(raw json.RawMessage) ([]CandidateRecord, error) {
	items, err := unwrapCandidateArray(raw)
	if err != nil {
		return nil, err
	}

	records := make([]CandidateRecord, 0, len(items))
	for _, item := range items {
		record, err := NormalizeCandidate(item)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func unwrapCandidateArray(raw json.RawMessage) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var wrapper struct {
		Candidates []json.RawMessage `json:"candidates"`
		Data       []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("payload is neither a candidate array nor a wrapper object: %w", err)
	}

	if wrapper.Candidates != nil {
		return wrapper.Candidates, nil
	}
	if wrapper.Data != nil {
		return wrapper.Data, nil
	}
	return nil, fmt.Errorf("wrapper object has no candidates or data array")
}
