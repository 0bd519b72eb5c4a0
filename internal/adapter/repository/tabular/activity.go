package tabular

import (
	"context"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/activity"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/store"
)

type ActivityRepository struct{ store *store.Adapter }

func NewActivityRepository(s *store.Adapter) *ActivityRepository {
	return &ActivityRepository{store: s}
}

func (r *ActivityRepository) List(ctx context.Context) ([]activity.Entry, error) {
	return readAll[activity.Entry](ctx, r.store, store.CollectionLogs)
}

func (r *ActivityRepository) Append(ctx context.Context, e *activity.Entry) error {
	return r.store.Write(ctx, store.OpCreate, store.CollectionLogs, e, "")
}
