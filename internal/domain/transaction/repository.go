package transaction

import "context"

type Repository interface {
	List(ctx context.Context) ([]Transaction, error)
	GetByID(ctx context.Context, id string) (*Transaction, error)
	Create(ctx context.Context, t *Transaction) error
	Delete(ctx context.Context, id string) error
}
