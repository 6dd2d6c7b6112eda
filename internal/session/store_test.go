package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sialabs/recruiting-agent/internal/models"
)

func candidates(names ...string) []models.CandidateRecord {
	records := make([]models.CandidateRecord, len(names))
	for i, name := range names {
		records[i].Candidate.FullName = name
	}
	return records
}

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore()
	state := store.Create()

	got, err := store.Get(state.ID)
	require.NoError(t, err)
	assert.Same(t, state, got)

	_, err = store.Get(uuid.New())
	require.Error(t, err)
}

func TestStore_Update(t *testing.T) {
	store := NewStore()
	state := store.Create()

	err := store.Update(state.ID, func(s *State) {
		s.RoleBrief = "Staff engineer, Seattle"
		s.Goal = "hire"
	})
	require.NoError(t, err)
	assert.Equal(t, "Staff engineer, Seattle", state.RoleBrief)

	err = store.Update(uuid.New(), func(*State) {})
	require.Error(t, err)
}

func TestStore_CommitAndUndo(t *testing.T) {
	store := NewStore()
	state := store.Create()

	original := candidates("Sarah Chen", "Marcus Webb")
	require.NoError(t, store.Update(state.ID, func(s *State) {
		s.Candidates = original
		s.AppendedFeedback = "MUST HAVE: Go"
	}))

	replacement := candidates("Priya Nair")
	require.NoError(t, store.CommitRegeneration(state.ID, replacement, "MUST HAVE: Go, senior"))
	assert.Equal(t, replacement, state.Candidates)
	assert.Equal(t, "MUST HAVE: Go, senior", state.AppendedFeedback)
	assert.True(t, store.CanUndo(state.ID))

	require.NoError(t, store.Undo(state.ID))
	assert.Equal(t, original, state.Candidates)
	assert.Equal(t, "MUST HAVE: Go", state.AppendedFeedback)
	assert.False(t, store.CanUndo(state.ID))
}

func TestStore_UndoIsSingleLevel(t *testing.T) {
	store := NewStore()
	state := store.Create()

	require.NoError(t, store.CommitRegeneration(state.ID, candidates("A"), "first"))
	require.NoError(t, store.CommitRegeneration(state.ID, candidates("B"), "second"))

	// Undo restores the first commit's result, not the empty initial state.
	require.NoError(t, store.Undo(state.ID))
	assert.Equal(t, candidates("A"), state.Candidates)
	assert.Equal(t, "first", state.AppendedFeedback)

	// History is one level deep.
	err := store.Undo(state.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to undo")
}

func TestStore_UndoWithNothingCommitted(t *testing.T) {
	store := NewStore()
	state := store.Create()

	err := store.Undo(state.ID)
	require.Error(t, err)
	assert.False(t, store.CanUndo(state.ID))
}

func TestStore_Reset(t *testing.T) {
	store := NewStore()
	state := store.Create()
	id := state.ID

	require.NoError(t, store.Update(id, func(s *State) {
		s.Goal = "hire"
		s.Candidates = candidates("Sarah Chen")
	}))
	require.NoError(t, store.CommitRegeneration(id, candidates("Priya Nair"), "memo"))

	require.NoError(t, store.Reset(id))
	assert.Equal(t, id, state.ID)
	assert.Empty(t, state.Goal)
	assert.Empty(t, state.Candidates)
	assert.Empty(t, state.AppendedFeedback)
	assert.False(t, store.CanUndo(id))
}

func TestStore_Delete(t *testing.T) {
	store := NewStore()
	state := store.Create()

	store.Delete(state.ID)
	_, err := store.Get(state.ID)
	require.Error(t, err)
}
