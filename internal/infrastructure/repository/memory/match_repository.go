// Package memory holds in-process repositories backing tests and the
// store-less development mode.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fifahub/liga-tracker/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]match.Match
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		nextID: 1,
		rows:   make(map[int64]match.Match),
	}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.rows))
	for _, m := range r.rows {
		out = append(out, cloneMatch(m))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.rows[id]
	if !ok {
		return match.Match{}, false, nil
	}

	return cloneMatch(m), true, nil
}

func (r *MatchRepository) Insert(_ context.Context, m match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	r.rows[m.ID] = cloneMatch(m)

	return m, nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[m.ID]; !ok {
		return nil
	}
	r.rows[m.ID] = cloneMatch(m)

	return nil
}

func (r *MatchRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, id)

	return nil
}

func cloneMatch(m match.Match) match.Match {
	m.ScorersA = append([]match.Scorer(nil), m.ScorersA...)
	m.ScorersB = append([]match.Scorer(nil), m.ScorersB...)
	return m
}
