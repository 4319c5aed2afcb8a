package stories

import "context"

type Repository interface {
	Create(ctx context.Context, s SuccessStory) error
	List(ctx context.Context) ([]SuccessStory, error)
	Count(ctx context.Context) (int, error)
}
