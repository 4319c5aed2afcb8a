package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pawkind/internal/domain/adoptions"
	"pawkind/internal/domain/pets"
)

type adoptionRepo struct {
	mu    sync.Mutex
	items []adoptions.Adoption
	pets  pets.Repository
}

// NewAdoptionRepo recibe el repo de pets para poder flipear adopted en el
// mismo paso. En memoria el par de escrituras corre en proceso, así que la
// "transacción" es trivial; el adapter de postgres usa una tx real.
func NewAdoptionRepo(petRepo pets.Repository) adoptions.Repository {
	return &adoptionRepo{pets: petRepo}
}

func (r *adoptionRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adoption id required")
	}

	r.mu.Lock()
	r.items = append(r.items, a)
	r.mu.Unlock()

	// petId inexistente => no-op, la adopción ya quedó registrada.
	return r.pets.MarkAdopted(ctx, a.PetID, a.UpdatedAt)
}

func (r *adoptionRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.items), nil
}
