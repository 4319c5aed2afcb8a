package caretips

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
	Title    string
	Content  string
	Icon     string
	Category string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (CareTip, error) {
	if strings.TrimSpace(in.Title) == "" {
		return CareTip{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Content) == "" {
		return CareTip{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Icon) == "" {
		return CareTip{}, ErrInvalidInput
	}

	cat := Category(strings.TrimSpace(in.Category))
	if cat != "" && !ValidCategory(cat) {
		return CareTip{}, ErrInvalidInput
	}

	now := s.now()
	t := CareTip{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		Icon:      strings.TrimSpace(in.Icon),
		Category:  cat,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return CareTip{}, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context) ([]CareTip, error) {
	return s.repo.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
