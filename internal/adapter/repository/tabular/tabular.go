// Package tabular implements the domain repositories on top of the
// store adapter: every record kind is one collection on the sheet
// service (or its locally cached copy).
package tabular

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/store"
)

func readAll[T any](ctx context.Context, s *store.Adapter, collection string) ([]T, error) {
	raws, err := s.ReadAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", collection, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
