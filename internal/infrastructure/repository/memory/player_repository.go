package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fifahub/liga-tracker/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]player.Player
}

func NewPlayerRepository(seed []player.Player) *PlayerRepository {
	r := &PlayerRepository{
		nextID: 1,
		rows:   make(map[int64]player.Player),
	}
	for _, p := range seed {
		p.ID = r.nextID
		r.nextID++
		r.rows[p.ID] = p
	}

	return r
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	sortPlayers(out)

	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, team string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, p := range r.rows {
		if p.Team == team {
			out = append(out, p)
		}
	}
	sortPlayers(out)

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.rows[id]
	if !ok {
		return player.Player{}, false, nil
	}

	return p, true, nil
}

func (r *PlayerRepository) GetByName(_ context.Context, name string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.rows {
		if p.Name == name {
			return p, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) Insert(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.rows[p.ID] = p

	return p, nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[p.ID]; !ok {
		return nil
	}
	r.rows[p.ID] = p

	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, id)

	return nil
}

func sortPlayers(players []player.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].ID < players[j].ID
	})
}
