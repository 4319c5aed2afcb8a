package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pawkind/internal/domain/caretips"
)

type careTipRepo struct {
	mu    sync.RWMutex
	byID  map[string]caretips.CareTip
	order []string
}

func NewCareTipRepo() caretips.Repository {
	return &careTipRepo{
		byID: make(map[string]caretips.CareTip),
	}
}

func (r *careTipRepo) Create(ctx context.Context, t caretips.CareTip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("care tip id required")
	}
	if _, exists := r.byID[t.ID]; exists {
		return errors.New("care tip already exists")
	}
	r.byID[t.ID] = t
	r.order = append(r.order, t.ID)
	return nil
}

func (r *careTipRepo) List(ctx context.Context) ([]caretips.CareTip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]caretips.CareTip, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *careTipRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}
