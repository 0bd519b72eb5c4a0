package tabular

import (
	"context"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/loan"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/store"
)

type LoanRepository struct{ store *store.Adapter }

func NewLoanRepository(s *store.Adapter) *LoanRepository { return &LoanRepository{store: s} }

func (r *LoanRepository) List(ctx context.Context) ([]loan.Loan, error) {
	return readAll[loan.Loan](ctx, r.store, store.CollectionLoans)
}

func (r *LoanRepository) GetByID(ctx context.Context, id string) (*loan.Loan, error) {
	loans, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range loans {
		if loans[i].ID == id {
			return &loans[i], nil
		}
	}
	return nil, loan.ErrNotFound
}

func (r *LoanRepository) ActiveByMember(ctx context.Context, memberID string) (*loan.Loan, error) {
	loans, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range loans {
		if loans[i].MemberID == memberID && loans[i].OutstandingBalance > 0 {
			return &loans[i], nil
		}
	}
	return nil, loan.ErrNoActiveLoan
}

func (r *LoanRepository) Create(ctx context.Context, l *loan.Loan) error {
	return r.store.Write(ctx, store.OpCreate, store.CollectionLoans, l, "")
}

func (r *LoanRepository) Update(ctx context.Context, l *loan.Loan) error {
	return r.store.Write(ctx, store.OpUpdate, store.CollectionLoans, l, l.ID)
}
