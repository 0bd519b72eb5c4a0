package loanmock

import (
	"context"

	domain "github.com/Yazidbusthomy27/KoperasiKita/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	ListFn           func(ctx context.Context) ([]domain.Loan, error)
	GetByIDFn        func(ctx context.Context, id string) (*domain.Loan, error)
	ActiveByMemberFn func(ctx context.Context, memberID string) (*domain.Loan, error)
	CreateFn         func(ctx context.Context, l *domain.Loan) error
	UpdateFn         func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ActiveByMember(ctx context.Context, memberID string) (*domain.Loan, error) {
	if m.ActiveByMemberFn != nil {
		return m.ActiveByMemberFn(ctx, memberID)
	}
	return nil, domain.ErrNoActiveLoan
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Update(ctx context.Context, l *domain.Loan) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, l)
	}
	return nil
}
