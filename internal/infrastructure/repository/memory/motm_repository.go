package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fifahub/liga-tracker/internal/domain/motm"
)

type awardKey struct {
	player string
	team   string
}

type MotmRepository struct {
	mu   sync.RWMutex
	rows map[awardKey]motm.Count
}

func NewMotmRepository() *MotmRepository {
	return &MotmRepository{rows: make(map[awardKey]motm.Count)}
}

func (r *MotmRepository) List(_ context.Context) ([]motm.Count, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]motm.Count, 0, len(r.rows))
	for _, c := range r.rows {
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Player != out[j].Player {
			return out[i].Player < out[j].Player
		}
		return out[i].Team < out[j].Team
	})

	return out, nil
}

func (r *MotmRepository) GetByPlayerTeam(_ context.Context, player, team string) (motm.Count, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.rows[awardKey{player: player, team: team}]
	if !ok {
		return motm.Count{}, false, nil
	}

	return c, true, nil
}

func (r *MotmRepository) Upsert(_ context.Context, c motm.Count) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[awardKey{player: c.Player, team: c.Team}] = c

	return nil
}

func (r *MotmRepository) Delete(_ context.Context, player, team string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, awardKey{player: player, team: team})

	return nil
}
