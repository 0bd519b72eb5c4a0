package member

import "errors"

// ReserveID is the id of the cooperative's own retained-earnings account.
// It is a regular row in the Members sheet, created lazily by the first
// profit distribution, and is excluded from every member-facing computation.
const ReserveID = "RESERVE"

var ErrNotFound = errors.New("member not found")

type Member struct {
	ID         string `json:"member_id"`
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`

	// Savings fields are mutated only through the transaction engine.
	PrincipalSavings float64 `json:"principal_savings"`
	MandatorySavings float64 `json:"mandatory_savings"`
	VoluntarySavings float64 `json:"voluntary_savings"`

	// ProfitShare accumulates distributed SHU; credited only by the
	// distribution engine (via profit-share transactions or direct bumps).
	ProfitShare float64 `json:"profit_share"`

	// SponsorID is the coordinator who registered this member. It scopes
	// visibility for coordinator actors, not ownership.
	SponsorID string `json:"sponsor_id,omitempty"`
}

// TotalSavings is the proportional-share basis used by the distribution
// engine: principal + mandatory + voluntary, excluding accumulated SHU.
func (m *Member) TotalSavings() float64 {
	return m.PrincipalSavings + m.MandatorySavings + m.VoluntarySavings
}

func (m *Member) IsReserve() bool { return m.ID == ReserveID }
