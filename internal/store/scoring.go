package store

import (
	"math/rand/v2"
	"sync"

	"hirewise-backend/internal/domain"
)

const (
	MinMatchScore = 0
	MaxMatchScore = 100
)

// Scorer rates how well a candidate fits a job, on a 0..100 scale.
type Scorer interface {
	Score(job domain.Job, candidate domain.CandidateInfo) int
}

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc func(job domain.Job, candidate domain.CandidateInfo) int

func (f ScorerFunc) Score(job domain.Job, candidate domain.CandidateInfo) int {
	return f(job, candidate)
}

// RandomScorer is the placeholder matching policy: a uniform draw over
// [min, max] that ignores its inputs.
type RandomScorer struct {
	mu     sync.Mutex
	rng    *rand.Rand
	lo, hi int
}

func NewRandomScorer(lo, hi int) *RandomScorer {
	return NewSeededRandomScorer(lo, hi, rand.Uint64())
}

// NewSeededRandomScorer gives a reproducible sequence for tests.
func NewSeededRandomScorer(lo, hi int, seed uint64) *RandomScorer {
	lo, hi = clampScore(lo), clampScore(hi)
	if lo > hi {
		lo, hi = hi, lo
	}
	return &RandomScorer{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		lo:  lo,
		hi:  hi,
	}
}

func (s *RandomScorer) Score(domain.Job, domain.CandidateInfo) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lo + s.rng.IntN(s.hi-s.lo+1)
}

func clampScore(score int) int {
	return min(max(score, MinMatchScore), MaxMatchScore)
}
