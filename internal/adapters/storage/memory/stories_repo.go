package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pawkind/internal/domain/stories"
)

type storyRepo struct {
	mu    sync.RWMutex
	byID  map[string]stories.SuccessStory
	order []string
}

func NewStoryRepo() stories.Repository {
	return &storyRepo{
		byID: make(map[string]stories.SuccessStory),
	}
}

func (r *storyRepo) Create(ctx context.Context, s stories.SuccessStory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("story id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("story already exists")
	}
	r.byID[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *storyRepo) List(ctx context.Context) ([]stories.SuccessStory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stories.SuccessStory, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *storyRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}
