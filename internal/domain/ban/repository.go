package ban

import "context"

type Repository interface {
	List(ctx context.Context) ([]Ban, error)
	ListActive(ctx context.Context) ([]Ban, error)
	GetByID(ctx context.Context, id int64) (Ban, bool, error)
	Insert(ctx context.Context, b Ban) (Ban, error)
	Update(ctx context.Context, b Ban) error
	Delete(ctx context.Context, id int64) error
}
