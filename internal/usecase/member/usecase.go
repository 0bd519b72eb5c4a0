package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/activity"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/loan"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/member"
	"github.com/Yazidbusthomy27/KoperasiKita/pkg/id"
)

type Usecase struct {
	members member.Repository
	loans   loan.Repository
	logs    activity.Repository
}

func NewUsecase(members member.Repository, loans loan.Repository, logs activity.Repository) *Usecase {
	return &Usecase{members: members, loans: loans, logs: logs}
}

// View is a member joined with derived balance figures.
type View struct {
	member.Member
	TotalSavings    float64 `json:"total_savings"`
	LoanOutstanding float64 `json:"loan_outstanding"`
	// TotalAssets is savings plus accumulated profit share.
	TotalAssets float64 `json:"total_assets"`
	// NetWorth subtracts the outstanding loan debt.
	NetWorth float64 `json:"net_worth"`
}

// List returns members with derived figures. A non-empty sponsorID scopes
// the listing to members registered by that coordinator. The reserve
// account is included; callers that must exclude it check IsReserve.
func (u *Usecase) List(ctx context.Context, sponsorID string) ([]View, error) {
	members, err := u.members.List(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}

	outstanding := make(map[string]float64, len(loans))
	for i := range loans {
		if loans[i].OutstandingBalance > 0 {
			outstanding[loans[i].MemberID] += loans[i].OutstandingBalance
		}
	}

	views := make([]View, 0, len(members))
	for i := range members {
		if sponsorID != "" && members[i].SponsorID != sponsorID {
			continue
		}
		views = append(views, newView(members[i], outstanding[members[i].ID]))
	}
	return views, nil
}

func (u *Usecase) Get(ctx context.Context, memberID string) (*View, error) {
	m, err := u.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	var debt float64
	if l, err := u.loans.ActiveByMember(ctx, memberID); err == nil {
		debt = l.OutstandingBalance
	} else if !errors.Is(err, loan.ErrNoActiveLoan) {
		return nil, err
	}
	v := newView(*m, debt)
	return &v, nil
}

func newView(m member.Member, debt float64) View {
	savings := m.TotalSavings()
	return View{
		Member:          m,
		TotalSavings:    savings,
		LoanOutstanding: debt,
		TotalAssets:     savings + m.ProfitShare,
		NetWorth:        savings + m.ProfitShare - debt,
	}
}

type CreateInput struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	SponsorID  string `json:"sponsor_id"`
}

func (u *Usecase) Create(ctx context.Context, in CreateInput, actor string) (*member.Member, error) {
	if in.Name == "" || in.NationalID == "" {
		return nil, errors.New("name and national id are required")
	}
	m := &member.Member{
		ID:         id.NewID32(),
		Name:       in.Name,
		NationalID: in.NationalID,
		Address:    in.Address,
		Phone:      in.Phone,
		SponsorID:  in.SponsorID,
	}
	if err := u.members.Create(ctx, m); err != nil {
		return nil, err
	}
	u.logf(ctx, actor, "registered member %s (%s)", m.Name, m.ID)
	return m, nil
}

type UpdateInput struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	SponsorID  string `json:"sponsor_id"`
}

// Update changes identity fields only. Savings and profit-share balances
// move exclusively through the transaction and distribution engines.
func (u *Usecase) Update(ctx context.Context, memberID string, in UpdateInput, actor string) (*member.Member, error) {
	m, err := u.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	m.Name = in.Name
	m.NationalID = in.NationalID
	m.Address = in.Address
	m.Phone = in.Phone
	m.SponsorID = in.SponsorID
	if err := u.members.Update(ctx, m); err != nil {
		return nil, err
	}
	u.logf(ctx, actor, "updated member %s", m.ID)
	return m, nil
}

func (u *Usecase) logf(ctx context.Context, actor, format string, args ...any) {
	_ = u.logs.Append(ctx, &activity.Entry{
		ID:          id.NewID32(),
		Timestamp:   time.Now().UTC(),
		Actor:       actor,
		Description: fmt.Sprintf(format, args...),
	})
}
