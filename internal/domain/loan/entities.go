package loan

import (
	"errors"
	"math"
)

type Status string

const (
	StatusActive  Status = "active"
	StatusSettled Status = "settled"
)

var (
	ErrNotFound     = errors.New("loan not found")
	ErrNoActiveLoan = errors.New("no active loan for member")
)

// Loan is a single flat-interest disbursement. OutstandingBalance starts at
// principal + total interest and only ever decreases; it never goes below
// zero and the loan settles exactly when it reaches zero.
type Loan struct {
	ID                 string  `json:"loan_id"`
	MemberID           string  `json:"member_id"`
	Principal          float64 `json:"principal"`
	MonthlyRatePercent float64 `json:"monthly_rate_percent"`
	TermMonths         int     `json:"term_months"`
	MonthlyInstallment float64 `json:"monthly_installment"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	Status             Status  `json:"status"`
}

// TotalInterest is flat interest on the original principal for the full term.
func (l *Loan) TotalInterest() float64 {
	return l.Principal * (l.MonthlyRatePercent / 100) * float64(l.TermMonths)
}

// TotalDebt is what the borrower owes over the life of the loan.
func (l *Loan) TotalDebt() float64 {
	return l.Principal + l.TotalInterest()
}

// InterestEarned is the interest portion of everything repaid so far,
// allocated by the interest/debt ratio (repayments retire principal and
// interest proportionally, not interest-first).
func (l *Loan) InterestEarned() float64 {
	debt := l.TotalDebt()
	if debt <= 0 {
		return 0
	}
	paid := debt - math.Max(0, l.OutstandingBalance)
	return paid * (l.TotalInterest() / debt)
}
