package transaction

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/activity"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/loan"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/member"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/transaction"
	"github.com/Yazidbusthomy27/KoperasiKita/pkg/id"
)

// RepaymentApplier is the slice of the loan engine the transaction engine
// needs for loan_repayment transactions.
type RepaymentApplier interface {
	ApplyRepayment(ctx context.Context, memberID string, amount float64) (*loan.Loan, error)
}

type Usecase struct {
	members member.Repository
	txns    transaction.Repository
	loans   RepaymentApplier
	logs    activity.Repository
}

func NewUsecase(members member.Repository, txns transaction.Repository, loans RepaymentApplier, logs activity.Repository) *Usecase {
	return &Usecase{members: members, txns: txns, loans: loans, logs: logs}
}

// effects maps each kind to its balance mutation, applied to a copy of the
// member with the non-negative magnitude. loan_repayment is absent on
// purpose: it touches the loan, not the member.
var effects = map[transaction.Kind]func(member.Member, float64) member.Member{
	transaction.KindPrincipalDeposit: func(m member.Member, v float64) member.Member {
		m.PrincipalSavings += v
		return m
	},
	transaction.KindMandatoryDeposit: func(m member.Member, v float64) member.Member {
		m.MandatorySavings += v
		return m
	},
	transaction.KindVoluntaryDeposit: func(m member.Member, v float64) member.Member {
		m.VoluntarySavings += v
		return m
	},
	transaction.KindWithdrawal: func(m member.Member, v float64) member.Member {
		m.VoluntarySavings -= v
		return m
	},
	transaction.KindProfitShare: func(m member.Member, v float64) member.Member {
		m.ProfitShare += v
		return m
	},
}

// reversals undo the corresponding effect against the member's current
// state, flooring balances at zero. loan_repayment reversal does not
// restore the loan's outstanding balance; only the ledger row goes away.
var reversals = map[transaction.Kind]func(member.Member, float64) member.Member{
	transaction.KindPrincipalDeposit: func(m member.Member, v float64) member.Member {
		m.PrincipalSavings = math.Max(0, m.PrincipalSavings-v)
		return m
	},
	transaction.KindMandatoryDeposit: func(m member.Member, v float64) member.Member {
		m.MandatorySavings = math.Max(0, m.MandatorySavings-v)
		return m
	},
	transaction.KindVoluntaryDeposit: func(m member.Member, v float64) member.Member {
		m.VoluntarySavings = math.Max(0, m.VoluntarySavings-v)
		return m
	},
	transaction.KindWithdrawal: func(m member.Member, v float64) member.Member {
		m.VoluntarySavings += v
		return m
	},
	transaction.KindProfitShare: func(m member.Member, v float64) member.Member {
		m.ProfitShare = math.Max(0, m.ProfitShare-v)
		return m
	},
}

type ApplyInput struct {
	MemberID string           `json:"member_id"`
	Kind     transaction.Kind `json:"kind"`
	Amount   float64          `json:"amount"`
	Note     string           `json:"note"`
}

// Apply records a transaction and mutates the owning member's balances.
// The caller-supplied amount is treated as a magnitude regardless of sign;
// the stored amount is negated for withdrawals and profit shares.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput, actor string) (*transaction.Transaction, error) {
	if !in.Kind.Valid() {
		return nil, transaction.ErrUnknownKind
	}
	m, err := u.members.GetByID(ctx, in.MemberID)
	if err != nil {
		return nil, err
	}
	magnitude := math.Abs(in.Amount)

	var updated *member.Member
	if in.Kind == transaction.KindLoanRepayment {
		if _, err := u.loans.ApplyRepayment(ctx, m.ID, magnitude); err != nil {
			return nil, err
		}
	} else {
		if in.Kind == transaction.KindWithdrawal && m.VoluntarySavings < magnitude {
			return nil, fmt.Errorf("%w: have %v, want %v",
				transaction.ErrInsufficientFunds, m.VoluntarySavings, magnitude)
		}
		next := effects[in.Kind](*m, magnitude)
		updated = &next
	}

	stored := magnitude
	if in.Kind.StoredNegative() {
		stored = -magnitude
	}
	t := &transaction.Transaction{
		ID:         id.NewPrefixed("TRX"),
		Timestamp:  time.Now().UTC(),
		MemberID:   m.ID,
		Kind:       in.Kind,
		Amount:     stored,
		RecordedBy: actor,
		Note:       in.Note,
	}
	if err := u.txns.Create(ctx, t); err != nil {
		return nil, err
	}
	if updated != nil {
		if err := u.members.Update(ctx, updated); err != nil {
			return nil, err
		}
	}
	u.logf(ctx, actor, "recorded %s of %v for member %s", in.Kind, magnitude, m.ID)
	return t, nil
}

// Delete removes a transaction and compensates the member's balances with
// the exact inverse of the original effect, computed against the member's
// current state.
func (u *Usecase) Delete(ctx context.Context, txnID, actor string) error {
	t, err := u.txns.GetByID(ctx, txnID)
	if err != nil {
		return err
	}
	magnitude := math.Abs(t.Amount)

	m, err := u.members.GetByID(ctx, t.MemberID)
	switch {
	case err == nil:
		if revert, ok := reversals[t.Kind]; ok {
			next := revert(*m, magnitude)
			if err := u.members.Update(ctx, &next); err != nil {
				return err
			}
		}
	case errors.Is(err, member.ErrNotFound):
		// Member already gone: drop the orphaned row without compensation.
	default:
		return err
	}

	if err := u.txns.Delete(ctx, txnID); err != nil {
		return err
	}
	u.logf(ctx, actor, "deleted transaction %s (%s, %v, member %s)", t.ID, t.Kind, magnitude, t.MemberID)
	return nil
}

func (u *Usecase) List(ctx context.Context) ([]transaction.Transaction, error) {
	return u.txns.List(ctx)
}

// logf appends an audit entry; audit failures never abort the operation.
func (u *Usecase) logf(ctx context.Context, actor, format string, args ...any) {
	_ = u.logs.Append(ctx, &activity.Entry{
		ID:          id.NewID32(),
		Timestamp:   time.Now().UTC(),
		Actor:       actor,
		Description: fmt.Sprintf(format, args...),
	})
}
