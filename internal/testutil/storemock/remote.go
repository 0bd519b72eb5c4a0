package storemock

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/store"
)

// Remote is a function-backed mock that satisfies store.Remote.
type Remote struct {
	ReadAllFn func(ctx context.Context, collection string) ([]json.RawMessage, error)
	WriteFn   func(ctx context.Context, op store.Op, collection string, record any, id string) error
}

func (m *Remote) ReadAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	if m.ReadAllFn != nil {
		return m.ReadAllFn(ctx, collection)
	}
	return nil, errors.New("not implemented")
}

func (m *Remote) Write(ctx context.Context, op store.Op, collection string, record any, id string) error {
	if m.WriteFn != nil {
		return m.WriteFn(ctx, op, collection, record, id)
	}
	return errors.New("not implemented")
}
