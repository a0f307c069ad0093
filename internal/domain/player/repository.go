package player

import "context"

type Repository interface {
	List(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, team string) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	GetByName(ctx context.Context, name string) (Player, bool, error)
	Insert(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, p Player) error
	Delete(ctx context.Context, id int64) error
}
