package distribution

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/activity"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/member"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/transaction"
	txnuc "github.com/Yazidbusthomy27/KoperasiKita/internal/usecase/transaction"
	"github.com/Yazidbusthomy27/KoperasiKita/pkg/id"
)

// InterestReporter is the slice of the loan engine the distribution engine
// consumes: total interest collected across all loans.
type InterestReporter interface {
	TotalInterestEarned(ctx context.Context) (float64, error)
}

// TransactionApplier records profit-share transactions through the
// transaction engine so the cash-flow ledger and member balances stay in
// one code path.
type TransactionApplier interface {
	Apply(ctx context.Context, in txnuc.ApplyInput, actor string) (*transaction.Transaction, error)
}

type Usecase struct {
	members member.Repository
	txns    transaction.Repository
	loans   InterestReporter
	engine  TransactionApplier
	logs    activity.Repository
}

func NewUsecase(members member.Repository, txns transaction.Repository, loans InterestReporter, engine TransactionApplier, logs activity.Repository) *Usecase {
	return &Usecase{members: members, txns: txns, loans: loans, engine: engine, logs: logs}
}

// Summary is the income-vs-distributed position used to size a run.
type Summary struct {
	InterestEarned     float64 `json:"interest_earned"`
	AlreadyDistributed float64 `json:"already_distributed"`
	AvailableReal      float64 `json:"available_real"`
}

// Summary computes the real profit still available for distribution:
// interest collected so far minus the magnitude of every profit-share
// transaction already on the ledger. Re-running a distribution with no new
// interest income therefore yields zero.
func (u *Usecase) Summary(ctx context.Context) (*Summary, error) {
	earned, err := u.loans.TotalInterestEarned(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := u.txns.List(ctx)
	if err != nil {
		return nil, err
	}
	var distributed float64
	for i := range txns {
		if txns[i].Kind == transaction.KindProfitShare {
			distributed += math.Abs(txns[i].Amount)
		}
	}
	return &Summary{
		InterestEarned:     earned,
		AlreadyDistributed: distributed,
		AvailableReal:      math.Max(0, earned-distributed),
	}, nil
}

// Allocation is one member's slice of a planned run. RealNominal is what
// gets recorded as a transaction; FullNominal is what the member's balance
// actually gains (real plus their share of the manual supplement).
// FullNominal >= RealNominal by construction.
type Allocation struct {
	MemberID    string  `json:"member_id"`
	Name        string  `json:"name"`
	Savings     float64 `json:"savings"`
	RealNominal float64 `json:"real_nominal"`
	FullNominal float64 `json:"full_nominal"`
}

type Plan struct {
	Summary            Summary      `json:"summary"`
	ManualProfit       float64      `json:"manual_profit"`
	MemberSharePercent float64      `json:"member_share_percent"`
	RealMemberPool     float64      `json:"real_member_pool"`
	RealReservePool    float64      `json:"real_reserve_pool"`
	FullProfit         float64      `json:"full_profit"`
	FullMemberPool     float64      `json:"full_member_pool"`
	FullReservePool    float64      `json:"full_reserve_pool"`
	SavingsBasis       float64      `json:"savings_basis"`
	Allocations        []Allocation `json:"allocations"`
}

// Plan sizes a run without executing it. Two parallel pools are computed:
// the real pool backed by collected interest, and the full pool that adds
// the operator-supplied manual profit. Per-member nominals are floored;
// flooring remainders stay in the pools and are never redistributed.
func (u *Usecase) Plan(ctx context.Context, manualProfit, memberSharePercent float64) (*Plan, error) {
	if manualProfit < 0 {
		return nil, errors.New("manual profit must not be negative")
	}
	if memberSharePercent < 0 || memberSharePercent > 100 {
		return nil, errors.New("member share percent must be within [0,100]")
	}

	summary, err := u.Summary(ctx)
	if err != nil {
		return nil, err
	}
	members, err := u.members.List(ctx)
	if err != nil {
		return nil, err
	}

	real := summary.AvailableReal
	full := real + manualProfit
	plan := &Plan{
		Summary:            *summary,
		ManualProfit:       manualProfit,
		MemberSharePercent: memberSharePercent,
		RealMemberPool:     math.Floor(real * memberSharePercent / 100),
		FullProfit:         full,
		FullMemberPool:     math.Floor(full * memberSharePercent / 100),
	}
	plan.RealReservePool = real - plan.RealMemberPool
	plan.FullReservePool = full - plan.FullMemberPool

	for i := range members {
		if members[i].IsReserve() {
			continue
		}
		plan.SavingsBasis += members[i].TotalSavings()
	}
	for i := range members {
		if members[i].IsReserve() {
			continue
		}
		a := Allocation{
			MemberID: members[i].ID,
			Name:     members[i].Name,
			Savings:  members[i].TotalSavings(),
		}
		if plan.SavingsBasis > 0 {
			ratio := a.Savings / plan.SavingsBasis
			a.RealNominal = math.Floor(ratio * plan.RealMemberPool)
			a.FullNominal = math.Floor(ratio * plan.FullMemberPool)
		}
		plan.Allocations = append(plan.Allocations, a)
	}
	return plan, nil
}

// Progress reports (done, total) after each processed step; total counts
// the eligible members plus one for the reserve account.
type Progress func(done, total int)

// PartialError reports a distribution that failed partway. Allocations
// applied before the failure stay applied; the caller must verify the
// ledger and re-run (a re-run only sees interest not yet distributed).
type PartialError struct {
	Applied int
	Total   int
	Err     error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("distribution stopped after %d/%d steps: %v", e.Applied, e.Total, e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }

// Execute applies a plan: one profit-share transaction per member for the
// real nominal, then a direct balance bump for the manual remainder (which
// deliberately never hits the ledger), and the same two-step treatment for
// the reserve account. Member state is re-read between the two steps so the
// bump lands on post-transaction balances. There is no rollback.
func (u *Usecase) Execute(ctx context.Context, plan *Plan, actor string, progress Progress) error {
	if progress == nil {
		progress = func(int, int) {}
	}
	if err := u.ensureReserve(ctx); err != nil {
		return err
	}

	var active []Allocation
	for _, a := range plan.Allocations {
		if a.FullNominal > 0 {
			active = append(active, a)
		}
	}
	total := len(active) + 1
	done := 0

	for _, a := range active {
		if a.RealNominal > 0 {
			_, err := u.engine.Apply(ctx, txnuc.ApplyInput{
				MemberID: a.MemberID,
				Kind:     transaction.KindProfitShare,
				Amount:   a.RealNominal,
				Note:     "member profit share",
			}, actor)
			if err != nil {
				return &PartialError{Applied: done, Total: total, Err: err}
			}
		}
		if diff := a.FullNominal - a.RealNominal; diff > 0 {
			if err := u.bumpProfitShare(ctx, a.MemberID, diff); err != nil {
				return &PartialError{Applied: done, Total: total, Err: err}
			}
		}
		done++
		progress(done, total)
	}

	if plan.RealReservePool > 0 {
		_, err := u.engine.Apply(ctx, txnuc.ApplyInput{
			MemberID: member.ReserveID,
			Kind:     transaction.KindProfitShare,
			Amount:   plan.RealReservePool,
			Note:     "retained earnings (real profit reset)",
		}, actor)
		if err != nil {
			return &PartialError{Applied: done, Total: total, Err: err}
		}
	}
	if diff := plan.FullReservePool - plan.RealReservePool; diff > 0 {
		if err := u.bumpProfitShare(ctx, member.ReserveID, diff); err != nil {
			return &PartialError{Applied: done, Total: total, Err: err}
		}
	}
	done++
	progress(done, total)

	u.logf(ctx, actor, "profit distribution complete: real %v, full %v, %d members",
		plan.Summary.AvailableReal, plan.FullProfit, len(active))
	return nil
}

// bumpProfitShare adds the manual-profit remainder straight onto the
// member's accumulated share, against freshly read state.
func (u *Usecase) bumpProfitShare(ctx context.Context, memberID string, diff float64) error {
	fresh, err := u.members.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, member.ErrNotFound) {
			return nil
		}
		return err
	}
	fresh.ProfitShare += diff
	return u.members.Update(ctx, fresh)
}

// ensureReserve creates the cooperative's retained-earnings account on
// first use.
func (u *Usecase) ensureReserve(ctx context.Context) error {
	_, err := u.members.GetByID(ctx, member.ReserveID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, member.ErrNotFound) {
		return err
	}
	reserve := &member.Member{
		ID:         member.ReserveID,
		Name:       "Cooperative Reserve Fund",
		NationalID: "SYSTEM",
		Address:    "Cooperative office",
		Phone:      "-",
	}
	if err := u.members.Create(ctx, reserve); err != nil {
		return err
	}
	u.logf(ctx, "system", "created reserve account %s", member.ReserveID)
	return nil
}

func (u *Usecase) logf(ctx context.Context, actor, format string, args ...any) {
	_ = u.logs.Append(ctx, &activity.Entry{
		ID:          id.NewID32(),
		Timestamp:   time.Now().UTC(),
		Actor:       actor,
		Description: fmt.Sprintf(format, args...),
	})
}
