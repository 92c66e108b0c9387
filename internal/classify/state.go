package classify

import (
	"context"
	"time"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

// LearnedStore persists learned patterns across runs. The in-memory state is
// authoritative during a pass; the store is hydration and write-behind.
type LearnedStore interface {
	ListLearnedPatterns(ctx context.Context) ([]model.LearnedPattern, error)
	SaveLearnedPattern(ctx context.Context, p *model.LearnedPattern) error
	PruneLearnedPatterns(ctx context.Context, keep int) error
}

// State is the explicit classifier state threaded through detection calls:
// the learned-pattern cache plus its bound. There is no package-level mutable
// state, so separate page contexts and test runs never leak into each other.
type State struct {
	store LearnedStore
	cache map[string]model.LearnedPattern
	order []string
	cap   int
}

// NewState creates classifier state with a bounded in-memory cache. A nil
// store keeps the cache purely in-memory.
func NewState(capacity int, store LearnedStore) *State {
	if capacity <= 0 {
		capacity = 1000
	}
	return &State{
		cache: make(map[string]model.LearnedPattern, capacity),
		cap:   capacity,
		store: store,
	}
}

// Hydrate loads persisted patterns into the in-memory cache.
func (s *State) Hydrate(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	patterns, err := s.store.ListLearnedPatterns(ctx)
	if err != nil {
		return err
	}
	for _, p := range patterns {
		s.insert(p)
	}
	return nil
}

// Lookup returns the cached pattern for a fingerprint.
func (s *State) Lookup(fingerprint string) (model.LearnedPattern, bool) {
	p, ok := s.cache[fingerprint]
	return p, ok
}

// Record stores a successful classification for future learned-strategy
// reuse and persists it when a store is attached. Entries past the cap are
// evicted oldest-first; the cache is an optimization, losing an entry only
// costs a future shortcut.
func (s *State) Record(ctx context.Context, fingerprint string, category model.Category, confidence float64, site string) {
	if fingerprint == "" {
		return
	}
	p := model.LearnedPattern{
		Fingerprint: fingerprint,
		Category:    category,
		Confidence:  confidence,
		Site:        site,
		SeenAt:      time.Now(),
	}
	if prev, ok := s.cache[fingerprint]; ok {
		p.UseCount = prev.UseCount + 1
	}
	s.insert(p)

	if s.store != nil {
		if err := s.store.SaveLearnedPattern(ctx, &p); err == nil {
			_ = s.store.PruneLearnedPatterns(ctx, s.cap)
		}
	}
}

// Size returns the number of cached patterns.
func (s *State) Size() int {
	return len(s.cache)
}

func (s *State) insert(p model.LearnedPattern) {
	// Refreshing an entry moves it to the back of the eviction order, so
	// in-memory eviction ages by last-seen, the same way the store prunes.
	if _, exists := s.cache[p.Fingerprint]; exists {
		for i, fp := range s.order {
			if fp == p.Fingerprint {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.order = append(s.order, p.Fingerprint)
	s.cache[p.Fingerprint] = p
	for len(s.cache) > s.cap && len(s.order) > 0 {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.cache, oldest)
	}
}
