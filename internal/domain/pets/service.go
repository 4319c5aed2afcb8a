package pets

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
	Name  string
	Type  string
	Age   string
	Bio   string
	Emoji string
	Image string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if !ValidType(PetType(strings.TrimSpace(in.Type))) {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Age) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Bio) == "" {
		return Pet{}, ErrInvalidInput
	}

	emoji := strings.TrimSpace(in.Emoji)
	if emoji == "" {
		emoji = DefaultEmoji
	}

	now := s.now()
	p := Pet{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Type:      PetType(strings.TrimSpace(in.Type)),
		Age:       strings.TrimSpace(in.Age),
		Bio:       strings.TrimSpace(in.Bio),
		Emoji:     emoji,
		Image:     strings.TrimSpace(in.Image),
		Adopted:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAvailable devuelve las mascotas aún no adoptadas.
func (s *Service) ListAvailable(ctx context.Context) ([]Pet, error) {
	return s.repo.ListUnadopted(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
