package caretips

import "context"

type Repository interface {
	Create(ctx context.Context, t CareTip) error
	List(ctx context.Context) ([]CareTip, error)
	Count(ctx context.Context) (int, error)
}
