package cache

import (
	"context"
	"strconv"

	"github.com/fifahub/liga-tracker/internal/domain/match"
	"github.com/fifahub/liga-tracker/internal/domain/motm"
	"github.com/fifahub/liga-tracker/internal/domain/player"
	basecache "github.com/fifahub/liga-tracker/internal/platform/cache"
)

// The decorators wrap the postgres repositories with a read-through cache.
// Writes pass through and drop the entity's whole key prefix, so a
// settlement never reads its own stale data.

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	v, err := r.cache.GetOrLoad(ctx, "match:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	key := "match:id:" + strconv.FormatInt(id, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedMatchByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}

	cached, _ := v.(cachedMatchByID)
	return cached.value, cached.exists, nil
}

func (r *MatchRepository) Insert(ctx context.Context, m match.Match) (match.Match, error) {
	inserted, err := r.next.Insert(ctx, m)
	if err != nil {
		return match.Match{}, err
	}
	r.cache.DeletePrefix(ctx, "match:")
	return inserted, nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	if err := r.next.Update(ctx, m); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:")
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:")
	return nil
}

type cachedMatchByID struct {
	value  match.Match
	exists bool
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, "player:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, team string) ([]player.Player, error) {
	key := "player:team:" + team
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTeam(ctx, team)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	key := "player:id:" + strconv.FormatInt(id, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedPlayer{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayer)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (player.Player, bool, error) {
	key := "player:name:" + name
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return cachedPlayer{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayer)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) Insert(ctx context.Context, p player.Player) (player.Player, error) {
	inserted, err := r.next.Insert(ctx, p)
	if err != nil {
		return player.Player{}, err
	}
	r.cache.DeletePrefix(ctx, "player:")
	return inserted, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	if err := r.next.Update(ctx, p); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "player:")
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "player:")
	return nil
}

type cachedPlayer struct {
	value  player.Player
	exists bool
}

type MotmRepository struct {
	next  motm.Repository
	cache *basecache.Store
}

func NewMotmRepository(next motm.Repository, cache *basecache.Store) *MotmRepository {
	return &MotmRepository{next: next, cache: cache}
}

func (r *MotmRepository) List(ctx context.Context) ([]motm.Count, error) {
	v, err := r.cache.GetOrLoad(ctx, "motm:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]motm.Count(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]motm.Count)
	return append([]motm.Count(nil), items...), nil
}

func (r *MotmRepository) GetByPlayerTeam(ctx context.Context, player, team string) (motm.Count, bool, error) {
	key := "motm:player:" + player + ":" + team
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByPlayerTeam(ctx, player, team)
		if err != nil {
			return nil, err
		}
		return cachedAwardCount{value: item, exists: exists}, nil
	})
	if err != nil {
		return motm.Count{}, false, err
	}

	cached, _ := v.(cachedAwardCount)
	return cached.value, cached.exists, nil
}

func (r *MotmRepository) Upsert(ctx context.Context, c motm.Count) error {
	if err := r.next.Upsert(ctx, c); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "motm:")
	return nil
}

func (r *MotmRepository) Delete(ctx context.Context, player, team string) error {
	if err := r.next.Delete(ctx, player, team); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "motm:")
	return nil
}

type cachedAwardCount struct {
	value  motm.Count
	exists bool
}
