package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fifahub/liga-tracker/internal/domain/ban"
)

type BanRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]ban.Ban
}

func NewBanRepository() *BanRepository {
	return &BanRepository{
		nextID: 1,
		rows:   make(map[int64]ban.Ban),
	}
}

func (r *BanRepository) List(_ context.Context) ([]ban.Ban, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ban.Ban, 0, len(r.rows))
	for _, b := range r.rows {
		out = append(out, b)
	}
	sortBans(out)

	return out, nil
}

func (r *BanRepository) ListActive(_ context.Context) ([]ban.Ban, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ban.Ban, 0)
	for _, b := range r.rows {
		if b.Active() {
			out = append(out, b)
		}
	}
	sortBans(out)

	return out, nil
}

func (r *BanRepository) GetByID(_ context.Context, id int64) (ban.Ban, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.rows[id]
	if !ok {
		return ban.Ban{}, false, nil
	}

	return b, true, nil
}

func (r *BanRepository) Insert(_ context.Context, b ban.Ban) (ban.Ban, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = r.nextID
	r.nextID++
	r.rows[b.ID] = b

	return b, nil
}

func (r *BanRepository) Update(_ context.Context, b ban.Ban) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[b.ID]; !ok {
		return nil
	}
	r.rows[b.ID] = b

	return nil
}

func (r *BanRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, id)

	return nil
}

func sortBans(bans []ban.Ban) {
	sort.SliceStable(bans, func(i, j int) bool {
		return bans[i].ID < bans[j].ID
	})
}
