package pets

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)

	// ListUnadopted devuelve solo adopted=false, en orden de inserción.
	ListUnadopted(ctx context.Context) ([]Pet, error)

	// MarkAdopted setea adopted=true. Un id inexistente NO es error:
	// el update afecta cero filas y el caller sigue (semántica del adopt).
	MarkAdopted(ctx context.Context, id string, at time.Time) error

	Count(ctx context.Context) (int, error)
}
