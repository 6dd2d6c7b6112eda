package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"sialabs/recruiting-agent/internal/models"
)

// DefaultAvatarPool is the local pool of 20 headshots served as static
// assets by the demo front-end.
var DefaultAvatarPool = func() []string {
	pool := make([]string, 20)
	for i := range pool {
		pool[i] = fmt.Sprintf("/avatars/avatar-%d.jpg", i+1)
	}
	return pool
}()

// AvatarAssigner attaches a display image reference to every candidate in a
// list. Assignment is total: after a call every record has an avatar, except
// for tolerated per-item failures of the remote policy.
type AvatarAssigner interface {
	Assign(ctx context.Context, candidates []models.CandidateRecord)
}

// NewHashAvatarAssigner selects deterministically by hashing the candidate
// name into the pool, probing forward past entries already taken. The same
// candidate list always gets the same avatars, and entries only repeat once
// the pool is exhausted.
func NewHashAvatarAssigner(pool []string) AvatarAssigner {
	return &hashAvatarAssigner{pool: pool}
}

type hashAvatarAssigner struct {
	pool []string
}

func (a *hashAvatarAssigner) Assign(ctx context.Context, candidates []models.CandidateRecord) {
	if len(a.pool) == 0 {
		return
	}

	taken := make(map[int]bool, len(candidates))
	for i := range candidates {
		idx := a.slotFor(&candidates[i], i)
		if len(taken) < len(a.pool) {
			for taken[idx] {
				idx = (idx + 1) % len(a.pool)
			}
		}
		taken[idx] = true
		candidates[i].Candidate.AvatarURL = a.pool[idx]
	}
}

func (a *hashAvatarAssigner) slotFor(record *models.CandidateRecord, index int) int {
	name := record.DisplayName()
	if name == "" {
		return index % len(a.pool)
	}
	h := fnv.New32a()
	h.Write([]byte(name))
	return int(h.Sum32()) % len(a.pool)
}

// NewShuffleAvatarAssigner reproduces the original demo behavior: shuffle
// the pool, then assign pool[i % len]. Assignments differ across calls.
func NewShuffleAvatarAssigner(pool []string) AvatarAssigner {
	return &shuffleAvatarAssigner{pool: pool}
}

type shuffleAvatarAssigner struct {
	pool []string
}

func (a *shuffleAvatarAssigner) Assign(ctx context.Context, candidates []models.CandidateRecord) {
	if len(a.pool) == 0 {
		return
	}

	shuffled := make([]string, len(a.pool))
	copy(shuffled, a.pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for i := range candidates {
		candidates[i].Candidate.AvatarURL = shuffled[i%len(shuffled)]
	}
}

// AvatarLookup resolves one candidate to an image URL via an external
// service.
type AvatarLookup func(ctx context.Context, seed string) (string, error)

// NewRemoteAvatarAssigner fetches one image per candidate in parallel. A
// failed lookup leaves that candidate's avatar unset and never fails the
// batch.
func NewRemoteAvatarAssigner(lookup AvatarLookup, concurrency int) AvatarAssigner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &remoteAvatarAssigner{lookup: lookup, concurrency: concurrency}
}

type remoteAvatarAssigner struct {
	lookup      AvatarLookup
	concurrency int
}

func (a *remoteAvatarAssigner) Assign(ctx context.Context, candidates []models.CandidateRecord) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i := range candidates {
		g.Go(func() error {
			url, err := a.lookup(gctx, candidates[i].DisplayName())
			if err != nil {
				log.Printf("⚠️  Avatar lookup failed for %q: %v\n", candidates[i].DisplayName(), err)
				return nil
			}
			candidates[i].Candidate.AvatarURL = url
			return nil
		})
	}

	// Goroutines swallow their own errors, so the join cannot fail.
	_ = g.Wait()
}
