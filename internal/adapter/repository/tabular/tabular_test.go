package tabular

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/loan"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/member"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/transaction"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/infrastructure/db"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/store"
)

func newOfflineAdapter(t *testing.T) *store.Adapter {
	t.Helper()
	gdb, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	cache, err := store.NewCache(gdb)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	return store.New(nil, cache, store.StartOffline())
}

func TestMemberRepository_CRUD(t *testing.T) {
	repo := NewMemberRepository(newOfflineAdapter(t))
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, "M1"); err != member.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	m := &member.Member{ID: "M1", Name: "Siti", VoluntarySavings: 1000}
	if err := repo.Create(ctx, m); err != nil {
		t.Fatalf("Create err: %v", err)
	}

	got, err := repo.GetByID(ctx, "M1")
	if err != nil {
		t.Fatalf("GetByID err: %v", err)
	}
	if got.Name != "Siti" || got.VoluntarySavings != 1000 {
		t.Fatalf("got %+v", got)
	}

	got.VoluntarySavings = 2500
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update err: %v", err)
	}
	again, err := repo.GetByID(ctx, "M1")
	if err != nil {
		t.Fatalf("GetByID err: %v", err)
	}
	if again.VoluntarySavings != 2500 {
		t.Fatalf("savings = %v, want 2500", again.VoluntarySavings)
	}

	members, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("members = %d, want 1", len(members))
	}
}

func TestTransactionRepository_CreateDelete(t *testing.T) {
	repo := NewTransactionRepository(newOfflineAdapter(t))
	ctx := context.Background()

	txn := &transaction.Transaction{ID: "T1", MemberID: "M1", Kind: transaction.KindVoluntaryDeposit, Amount: 500}
	if err := repo.Create(ctx, txn); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if err := repo.Create(ctx, &transaction.Transaction{ID: "T2", MemberID: "M1", Kind: transaction.KindWithdrawal, Amount: -200}); err != nil {
		t.Fatalf("Create err: %v", err)
	}

	got, err := repo.GetByID(ctx, "T1")
	if err != nil {
		t.Fatalf("GetByID err: %v", err)
	}
	if got.Amount != 500 {
		t.Fatalf("amount = %v, want 500", got.Amount)
	}

	if err := repo.Delete(ctx, "T1"); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if _, err := repo.GetByID(ctx, "T1"); err != transaction.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	txns, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(txns) != 1 || txns[0].ID != "T2" {
		t.Fatalf("txns = %+v", txns)
	}
}

func TestLoanRepository_ActiveByMember(t *testing.T) {
	repo := NewLoanRepository(newOfflineAdapter(t))
	ctx := context.Background()

	if _, err := repo.ActiveByMember(ctx, "M1"); err != loan.ErrNoActiveLoan {
		t.Fatalf("err = %v, want ErrNoActiveLoan", err)
	}

	settled := &loan.Loan{ID: "L1", MemberID: "M1", OutstandingBalance: 0, Status: loan.StatusSettled}
	active := &loan.Loan{ID: "L2", MemberID: "M1", OutstandingBalance: 1200, Status: loan.StatusActive}
	if err := repo.Create(ctx, settled); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if err := repo.Create(ctx, active); err != nil {
		t.Fatalf("Create err: %v", err)
	}

	got, err := repo.ActiveByMember(ctx, "M1")
	if err != nil {
		t.Fatalf("ActiveByMember err: %v", err)
	}
	if got.ID != "L2" {
		t.Fatalf("got loan %s, want L2", got.ID)
	}

	got.OutstandingBalance = 0
	got.Status = loan.StatusSettled
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if _, err := repo.ActiveByMember(ctx, "M1"); err != loan.ErrNoActiveLoan {
		t.Fatalf("err = %v, want ErrNoActiveLoan", err)
	}
}
