package stories

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
	Story string
	Emoji string
	Image string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (SuccessStory, error) {
	if strings.TrimSpace(in.Name) == "" {
		return SuccessStory{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Story) == "" {
		return SuccessStory{}, ErrInvalidInput
	}

	emoji := strings.TrimSpace(in.Emoji)
	if emoji == "" {
		emoji = DefaultEmoji
	}

	now := s.now()
	st := SuccessStory{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Story:     strings.TrimSpace(in.Story),
		Emoji:     emoji,
		Image:     strings.TrimSpace(in.Image),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return SuccessStory{}, err
	}
	return st, nil
}

func (s *Service) List(ctx context.Context) ([]SuccessStory, error) {
	return s.repo.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
