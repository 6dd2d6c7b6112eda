// Package session replaces the original demo's browser-storage bag of
// optional fields with an explicit, schema'd wizard state object. One store
// owns all sessions; the wizard is the only writer within a session.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"sialabs/recruiting-agent/internal/models"
)

// State is the accumulated wizard answers for one run. Candidates and the
// feedback memo are replaced wholesale on regeneration, never merged.
type State struct {
	ID                 uuid.UUID
	Goal               string
	RoleBrief          string
	ScreeningQuestions []models.ScreeningQuestion
	Candidates         []models.CandidateRecord
	AppendedFeedback   string
	Turns              []models.ConversationTurn

	// prior regeneration snapshot; nil when there is nothing to undo
	prev *snapshot
}

type snapshot struct {
	candidates []models.CandidateRecord
	feedback   string
}

// Store holds all live wizard sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*State
}

func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*State)}
}

// Create starts a fresh session.
func (s *Store) Create() *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := &State{ID: uuid.New()}
	s.sessions[state.ID] = state
	return state
}

// Get returns the session with the given ID.
func (s *Store) Get(id uuid.UUID) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	return state, nil
}

// Update applies fn to the session under the store lock. Writes within a
// session are serialized; concurrent updates are not deduplicated, the later
// one wins.
func (s *Store) Update(id uuid.UUID, fn func(*State)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("session %s not found", id)
	}
	fn(state)
	return nil
}

// CommitRegeneration replaces the candidate list and feedback memo with the
// regeneration result, capturing the prior pair for a single-level undo.
// Nothing is committed before this call, so a failed regeneration leaves the
// session untouched.
func (s *Store) CommitRegeneration(id uuid.UUID, candidates []models.CandidateRecord, feedback string) error {
	return s.Update(id, func(state *State) {
		state.prev = &snapshot{
			candidates: cloneCandidates(state.Candidates),
			feedback:   state.AppendedFeedback,
		}
		state.Candidates = candidates
		state.AppendedFeedback = feedback
	})
}

// Undo restores the candidate list and memo captured by the most recent
// CommitRegeneration. There is one level of history, not a full stack.
func (s *Store) Undo(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("session %s not found", id)
	}
	if state.prev == nil {
		return fmt.Errorf("nothing to undo")
	}

	state.Candidates = state.prev.candidates
	state.AppendedFeedback = state.prev.feedback
	state.prev = nil
	return nil
}

// CanUndo reports whether a prior regeneration snapshot exists.
func (s *Store) CanUndo(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[id]
	return ok && state.prev != nil
}

// Reset destroys all accumulated state for the session, matching the
// wizard's explicit restart.
func (s *Store) Reset(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("session %s not found", id)
	}
	*state = State{ID: state.ID}
	return nil
}

// Delete removes the session entirely.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func cloneCandidates(candidates []models.CandidateRecord) []models.CandidateRecord {
	if candidates == nil {
		return nil
	}
	cloned := make([]models.CandidateRecord, len(candidates))
	copy(cloned, candidates)
	return cloned
}
