package contacts

import "context"

type Repository interface {
	Create(ctx context.Context, c Contact) error
}
