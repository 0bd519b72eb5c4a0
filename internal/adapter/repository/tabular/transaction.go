package tabular

import (
	"context"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/transaction"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/store"
)

type TransactionRepository struct{ store *store.Adapter }

func NewTransactionRepository(s *store.Adapter) *TransactionRepository {
	return &TransactionRepository{store: s}
}

func (r *TransactionRepository) List(ctx context.Context) ([]transaction.Transaction, error) {
	return readAll[transaction.Transaction](ctx, r.store, store.CollectionTransactions)
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	txns, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range txns {
		if txns[i].ID == id {
			return &txns[i], nil
		}
	}
	return nil, transaction.ErrNotFound
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	return r.store.Write(ctx, store.OpCreate, store.CollectionTransactions, t, "")
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	return r.store.Write(ctx, store.OpDelete, store.CollectionTransactions, nil, id)
}
