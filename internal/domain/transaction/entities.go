package transaction

import (
	"errors"
	"time"
)

type Kind string

const (
	KindPrincipalDeposit Kind = "principal_deposit"
	KindMandatoryDeposit Kind = "mandatory_deposit"
	KindVoluntaryDeposit Kind = "voluntary_deposit"
	KindWithdrawal       Kind = "withdrawal"
	KindLoanRepayment    Kind = "loan_repayment"
	KindProfitShare      Kind = "profit_share"
)

var (
	ErrNotFound          = errors.New("transaction not found")
	ErrUnknownKind       = errors.New("unknown transaction kind")
	ErrInsufficientFunds = errors.New("insufficient voluntary savings")
)

// Transaction is an atomic balance-affecting event. Amount carries the
// stored sign: withdrawals and profit shares are persisted negative, all
// other kinds positive. Balance math always works on the magnitude.
type Transaction struct {
	ID         string    `json:"transaction_id"`
	Timestamp  time.Time `json:"timestamp"`
	MemberID   string    `json:"member_id"`
	Kind       Kind      `json:"kind"`
	Amount     float64   `json:"amount"`
	RecordedBy string    `json:"recorded_by"`
	Note       string    `json:"note"`
}

func (k Kind) Valid() bool {
	switch k {
	case KindPrincipalDeposit, KindMandatoryDeposit, KindVoluntaryDeposit,
		KindWithdrawal, KindLoanRepayment, KindProfitShare:
		return true
	}
	return false
}

// StoredNegative reports whether this kind is persisted with a negated
// amount (cash leaving the voluntary pool or the profit pool).
func (k Kind) StoredNegative() bool {
	return k == KindWithdrawal || k == KindProfitShare
}
