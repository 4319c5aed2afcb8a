package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pawkind/internal/domain/contacts"
)

type contactRepo struct {
	mu    sync.Mutex
	items []contacts.Contact
}

func NewContactRepo() contacts.Repository {
	return &contactRepo{}
}

// Create solo agrega: los contactos son un log append-only sin lectura.
func (r *contactRepo) Create(ctx context.Context, c contacts.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("contact id required")
	}
	r.items = append(r.items, c)
	return nil
}
