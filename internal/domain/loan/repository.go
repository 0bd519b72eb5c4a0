package loan

import "context"

type Repository interface {
	List(ctx context.Context) ([]Loan, error)
	GetByID(ctx context.Context, id string) (*Loan, error)
	// ActiveByMember returns the member's loan with a positive outstanding
	// balance. At most one such loan per member is assumed.
	ActiveByMember(ctx context.Context, memberID string) (*Loan, error)
	Create(ctx context.Context, l *Loan) error
	Update(ctx context.Context, l *Loan) error
}
