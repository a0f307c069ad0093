package match

import "context"

// Repository is the persistence port for matches. List returns matches in
// ascending (date, id) order so callers can derive stable match numbering.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	Insert(ctx context.Context, m Match) (Match, error)
	Update(ctx context.Context, m Match) error
	Delete(ctx context.Context, id int64) error
}
