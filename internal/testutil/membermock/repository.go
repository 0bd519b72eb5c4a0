package membermock

import (
	"context"

	domain "github.com/Yazidbusthomy27/KoperasiKita/internal/domain/member"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListFn    func(ctx context.Context) ([]domain.Member, error)
	GetByIDFn func(ctx context.Context, id string) (*domain.Member, error)
	CreateFn  func(ctx context.Context, m *domain.Member) error
	UpdateFn  func(ctx context.Context, m *domain.Member) error
}

func (m *Repo) List(ctx context.Context) ([]domain.Member, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Create(ctx context.Context, rec *domain.Member) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, rec)
	}
	return nil
}

func (m *Repo) Update(ctx context.Context, rec *domain.Member) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, rec)
	}
	return nil
}
