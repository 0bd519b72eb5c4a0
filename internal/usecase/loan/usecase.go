package loan

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/loan"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/member"
	"github.com/Yazidbusthomy27/KoperasiKita/pkg/id"
)

type Usecase struct {
	loans   loan.Repository
	members member.Repository
}

func NewUsecase(loans loan.Repository, members member.Repository) *Usecase {
	return &Usecase{loans: loans, members: members}
}

type DisburseInput struct {
	MemberID           string  `json:"member_id"`
	Principal          float64 `json:"principal"`
	MonthlyRatePercent float64 `json:"monthly_rate_percent"`
	TermMonths         int     `json:"term_months"`
}

// Disburse creates a flat-interest loan: interest is computed once on the
// full principal for the whole term and folded into the outstanding balance
// up front. The monthly installment rounds up so the final payment is never
// larger than the others.
func (u *Usecase) Disburse(ctx context.Context, in DisburseInput) (*loan.Loan, error) {
	if in.MemberID == "" || in.Principal <= 0 || in.TermMonths <= 0 || in.MonthlyRatePercent < 0 {
		return nil, errors.New("invalid disbursement input")
	}
	if _, err := u.members.GetByID(ctx, in.MemberID); err != nil {
		return nil, err
	}

	totalInterest := in.Principal * (in.MonthlyRatePercent / 100) * float64(in.TermMonths)
	totalDebt := in.Principal + totalInterest

	l := &loan.Loan{
		ID:                 id.NewPrefixed("LN"),
		MemberID:           in.MemberID,
		Principal:          in.Principal,
		MonthlyRatePercent: in.MonthlyRatePercent,
		TermMonths:         in.TermMonths,
		MonthlyInstallment: math.Ceil(totalDebt / float64(in.TermMonths)),
		OutstandingBalance: totalDebt,
		Status:             loan.StatusActive,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// ApplyRepayment pays down the member's active loan. The balance floors at
// zero and the loan settles exactly when it reaches zero; any excess over
// the outstanding balance is absorbed, not credited back to savings.
func (u *Usecase) ApplyRepayment(ctx context.Context, memberID string, amount float64) (*loan.Loan, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("repayment amount must be positive, got %v", amount)
	}
	l, err := u.loans.ActiveByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	newBalance := l.OutstandingBalance - amount
	if newBalance < 0 {
		newBalance = 0
	}
	l.OutstandingBalance = newBalance
	if newBalance == 0 {
		l.Status = loan.StatusSettled
	}
	if err := u.loans.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (u *Usecase) List(ctx context.Context) ([]loan.Loan, error) {
	return u.loans.List(ctx)
}

// TotalInterestEarned sums the collected-interest portion across all loans,
// the income side of the profit distribution.
func (u *Usecase) TotalInterestEarned(ctx context.Context) (float64, error) {
	loans, err := u.loans.List(ctx)
	if err != nil {
		return 0, err
	}
	var total float64
	for i := range loans {
		total += loans[i].InterestEarned()
	}
	return total, nil
}
