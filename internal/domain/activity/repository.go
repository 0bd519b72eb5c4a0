package activity

import "context"

type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	Append(ctx context.Context, e *Entry) error
}
