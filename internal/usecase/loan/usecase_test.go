package loan

import (
	"context"
	"errors"
	"testing"

	domain "github.com/Yazidbusthomy27/KoperasiKita/internal/domain/loan"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/member"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/testutil/loanmock"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/testutil/memledger"
)

func newFixture(members ...member.Member) (*memledger.Ledger, *Usecase) {
	l := memledger.New()
	l.MembersData = members
	return l, NewUsecase(l.Loans(), l.Members())
}

func TestDisburse_FlatInterestMath(t *testing.T) {
	_, uc := newFixture(member.Member{ID: "M1", Name: "Ani"})

	l, err := uc.Disburse(context.Background(), DisburseInput{
		MemberID:           "M1",
		Principal:          1_000_000,
		MonthlyRatePercent: 2,
		TermMonths:         12,
	})
	if err != nil {
		t.Fatalf("Disburse err: %v", err)
	}

	if got := l.TotalInterest(); got != 240_000 {
		t.Fatalf("TotalInterest = %v, want 240000", got)
	}
	if got := l.TotalDebt(); got != 1_240_000 {
		t.Fatalf("TotalDebt = %v, want 1240000", got)
	}
	if l.OutstandingBalance != 1_240_000 {
		t.Fatalf("OutstandingBalance = %v, want 1240000", l.OutstandingBalance)
	}
	// ceiling(1240000/12) = 103334
	if l.MonthlyInstallment != 103_334 {
		t.Fatalf("MonthlyInstallment = %v, want 103334", l.MonthlyInstallment)
	}
	if l.Status != domain.StatusActive {
		t.Fatalf("Status = %s, want active", l.Status)
	}
}

func TestDisburse_ZeroRate(t *testing.T) {
	_, uc := newFixture(member.Member{ID: "M1"})

	l, err := uc.Disburse(context.Background(), DisburseInput{
		MemberID: "M1", Principal: 600_000, MonthlyRatePercent: 0, TermMonths: 6,
	})
	if err != nil {
		t.Fatalf("Disburse err: %v", err)
	}
	if l.OutstandingBalance != 600_000 || l.MonthlyInstallment != 100_000 {
		t.Fatalf("balance=%v installment=%v", l.OutstandingBalance, l.MonthlyInstallment)
	}
}

func TestDisburse_UnknownMember(t *testing.T) {
	_, uc := newFixture()
	_, err := uc.Disburse(context.Background(), DisburseInput{
		MemberID: "ghost", Principal: 100, TermMonths: 3,
	})
	if !errors.Is(err, member.ErrNotFound) {
		t.Fatalf("err = %v, want member not found", err)
	}
}

func TestDisburse_InvalidInput(t *testing.T) {
	_, uc := newFixture(member.Member{ID: "M1"})
	cases := []DisburseInput{
		{MemberID: "", Principal: 100, TermMonths: 3},
		{MemberID: "M1", Principal: 0, TermMonths: 3},
		{MemberID: "M1", Principal: 100, TermMonths: 0},
		{MemberID: "M1", Principal: 100, MonthlyRatePercent: -1, TermMonths: 3},
	}
	for i, in := range cases {
		if _, err := uc.Disburse(context.Background(), in); err == nil {
			t.Fatalf("case %d: want error", i)
		}
	}
}

func TestApplyRepayment_FloorsAndSettles(t *testing.T) {
	led, uc := newFixture(member.Member{ID: "M1"})
	led.LoansData = []domain.Loan{{
		ID: "LN-1", MemberID: "M1",
		Principal: 100_000, MonthlyRatePercent: 0, TermMonths: 4,
		OutstandingBalance: 100_000, Status: domain.StatusActive,
	}}

	l, err := uc.ApplyRepayment(context.Background(), "M1", 60_000)
	if err != nil {
		t.Fatalf("ApplyRepayment err: %v", err)
	}
	if l.OutstandingBalance != 40_000 || l.Status != domain.StatusActive {
		t.Fatalf("balance=%v status=%s", l.OutstandingBalance, l.Status)
	}

	// Overpay: balance floors at zero, excess absorbed, loan settled.
	l, err = uc.ApplyRepayment(context.Background(), "M1", 70_000)
	if err != nil {
		t.Fatalf("ApplyRepayment err: %v", err)
	}
	if l.OutstandingBalance != 0 {
		t.Fatalf("balance = %v, want 0", l.OutstandingBalance)
	}
	if l.Status != domain.StatusSettled {
		t.Fatalf("status = %s, want settled", l.Status)
	}

	// A settled loan is no longer an active loan.
	if _, err := uc.ApplyRepayment(context.Background(), "M1", 10_000); !errors.Is(err, domain.ErrNoActiveLoan) {
		t.Fatalf("err = %v, want no active loan", err)
	}
	if led.LoansData[0].OutstandingBalance != 0 {
		t.Fatalf("settled balance changed: %v", led.LoansData[0].OutstandingBalance)
	}
}

func TestApplyRepayment_NonPositiveAmount(t *testing.T) {
	_, uc := newFixture(member.Member{ID: "M1"})
	if _, err := uc.ApplyRepayment(context.Background(), "M1", 0); err == nil {
		t.Fatal("want error")
	}
}

func TestInterestEarned_ProportionalToRepayment(t *testing.T) {
	l := domain.Loan{
		Principal: 1_000_000, MonthlyRatePercent: 2, TermMonths: 12,
		OutstandingBalance: 620_000, // half repaid of 1,240,000
	}
	// half the debt repaid, so half the interest collected
	if got := l.InterestEarned(); !approxEq(got, 120_000) {
		t.Fatalf("InterestEarned = %v, want 120000", got)
	}

	l.OutstandingBalance = 0
	if got := l.InterestEarned(); !approxEq(got, 240_000) {
		t.Fatalf("InterestEarned = %v, want 240000", got)
	}

	zero := domain.Loan{}
	if got := zero.InterestEarned(); got != 0 {
		t.Fatalf("InterestEarned on empty loan = %v, want 0", got)
	}
}

func TestTotalInterestEarned_SumsAllLoans(t *testing.T) {
	led, uc := newFixture()
	led.LoansData = []domain.Loan{
		{Principal: 1_000_000, MonthlyRatePercent: 2, TermMonths: 12, OutstandingBalance: 0},       // 240000
		{Principal: 1_000_000, MonthlyRatePercent: 2, TermMonths: 12, OutstandingBalance: 620_000}, // 120000
	}
	got, err := uc.TotalInterestEarned(context.Background())
	if err != nil {
		t.Fatalf("TotalInterestEarned err: %v", err)
	}
	if !approxEq(got, 360_000) {
		t.Fatalf("total = %v, want 360000", got)
	}
}

func TestTotalInterestEarned_RepoError(t *testing.T) {
	repoErr := errors.New("sheet unreachable")
	uc := NewUsecase(&loanmock.Repo{
		ListFn: func(ctx context.Context) ([]domain.Loan, error) { return nil, repoErr },
	}, memledger.New().Members())

	if _, err := uc.TotalInterestEarned(context.Background()); !errors.Is(err, repoErr) {
		t.Fatalf("err = %v, want repo error", err)
	}
}

func approxEq(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
