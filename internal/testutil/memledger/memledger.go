// Package memledger is an in-memory implementation of the domain
// repositories for engine tests: deterministic, no store adapter, no IO.
package memledger

import (
	"context"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/activity"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/loan"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/member"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/transaction"
)

type Ledger struct {
	MembersData      []member.Member
	TransactionsData []transaction.Transaction
	LoansData        []loan.Loan
	LogsData         []activity.Entry
}

func New() *Ledger { return &Ledger{} }

// --- member.Repository ---

type Members struct{ l *Ledger }

func (l *Ledger) Members() *Members { return &Members{l: l} }

func (r *Members) List(ctx context.Context) ([]member.Member, error) {
	return append([]member.Member(nil), r.l.MembersData...), nil
}

func (r *Members) GetByID(ctx context.Context, id string) (*member.Member, error) {
	for i := range r.l.MembersData {
		if r.l.MembersData[i].ID == id {
			m := r.l.MembersData[i]
			return &m, nil
		}
	}
	return nil, member.ErrNotFound
}

func (r *Members) Create(ctx context.Context, m *member.Member) error {
	r.l.MembersData = append(r.l.MembersData, *m)
	return nil
}

func (r *Members) Update(ctx context.Context, m *member.Member) error {
	for i := range r.l.MembersData {
		if r.l.MembersData[i].ID == m.ID {
			r.l.MembersData[i] = *m
			return nil
		}
	}
	return member.ErrNotFound
}

// --- transaction.Repository ---

type Transactions struct{ l *Ledger }

func (l *Ledger) Transactions() *Transactions { return &Transactions{l: l} }

func (r *Transactions) List(ctx context.Context) ([]transaction.Transaction, error) {
	return append([]transaction.Transaction(nil), r.l.TransactionsData...), nil
}

func (r *Transactions) GetByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	for i := range r.l.TransactionsData {
		if r.l.TransactionsData[i].ID == id {
			t := r.l.TransactionsData[i]
			return &t, nil
		}
	}
	return nil, transaction.ErrNotFound
}

func (r *Transactions) Create(ctx context.Context, t *transaction.Transaction) error {
	r.l.TransactionsData = append(r.l.TransactionsData, *t)
	return nil
}

func (r *Transactions) Delete(ctx context.Context, id string) error {
	kept := r.l.TransactionsData[:0]
	for _, t := range r.l.TransactionsData {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.l.TransactionsData = kept
	return nil
}

// --- loan.Repository ---

type Loans struct{ l *Ledger }

func (l *Ledger) Loans() *Loans { return &Loans{l: l} }

func (r *Loans) List(ctx context.Context) ([]loan.Loan, error) {
	return append([]loan.Loan(nil), r.l.LoansData...), nil
}

func (r *Loans) GetByID(ctx context.Context, id string) (*loan.Loan, error) {
	for i := range r.l.LoansData {
		if r.l.LoansData[i].ID == id {
			out := r.l.LoansData[i]
			return &out, nil
		}
	}
	return nil, loan.ErrNotFound
}

func (r *Loans) ActiveByMember(ctx context.Context, memberID string) (*loan.Loan, error) {
	for i := range r.l.LoansData {
		if r.l.LoansData[i].MemberID == memberID && r.l.LoansData[i].OutstandingBalance > 0 {
			out := r.l.LoansData[i]
			return &out, nil
		}
	}
	return nil, loan.ErrNoActiveLoan
}

func (r *Loans) Create(ctx context.Context, l *loan.Loan) error {
	r.l.LoansData = append(r.l.LoansData, *l)
	return nil
}

func (r *Loans) Update(ctx context.Context, l *loan.Loan) error {
	for i := range r.l.LoansData {
		if r.l.LoansData[i].ID == l.ID {
			r.l.LoansData[i] = *l
			return nil
		}
	}
	return loan.ErrNotFound
}

// --- activity.Repository ---

type Logs struct{ l *Ledger }

func (l *Ledger) Logs() *Logs { return &Logs{l: l} }

func (r *Logs) List(ctx context.Context) ([]activity.Entry, error) {
	return append([]activity.Entry(nil), r.l.LogsData...), nil
}

func (r *Logs) Append(ctx context.Context, e *activity.Entry) error {
	r.l.LogsData = append(r.l.LogsData, *e)
	return nil
}
