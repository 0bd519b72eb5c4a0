package member

import "context"

type Repository interface {
	List(ctx context.Context) ([]Member, error)
	GetByID(ctx context.Context, id string) (*Member, error)
	Create(ctx context.Context, m *Member) error
	// Update persists the full record; callers re-read before mutating
	// (the backing store is read-modify-write, see internal/store).
	Update(ctx context.Context, m *Member) error
}
