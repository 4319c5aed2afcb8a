package adoptions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	PetID    string
	UserName string
	PetName  string
}

// Create registra el pedido con status pending. No valida que el petId
// exista ni que la mascota no esté ya adoptada: dos pedidos concurrentes
// sobre la misma mascota generan dos registros, y ambos terminan 201.
func (s *Service) Create(ctx context.Context, in CreateInput) (Adoption, error) {
	if strings.TrimSpace(in.PetID) == "" {
		return Adoption{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.UserName) == "" {
		return Adoption{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.PetName) == "" {
		return Adoption{}, ErrInvalidInput
	}

	now := s.now()
	a := Adoption{
		ID:        uuid.NewString(),
		PetID:     strings.TrimSpace(in.PetID),
		UserName:  strings.TrimSpace(in.UserName),
		PetName:   strings.TrimSpace(in.PetName),
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Adoption{}, err
	}
	return a, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
