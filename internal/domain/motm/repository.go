package motm

import "context"

type Repository interface {
	List(ctx context.Context) ([]Count, error)
	GetByPlayerTeam(ctx context.Context, player, team string) (Count, bool, error)
	Upsert(ctx context.Context, c Count) error
	Delete(ctx context.Context, player, team string) error
}
