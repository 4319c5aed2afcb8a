package contacts

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
	Name     string
	Email    string
	Interest string
	Message  string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Contact, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Contact{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Email) == "" {
		return Contact{}, ErrInvalidInput
	}
	if !ValidInterest(Interest(strings.TrimSpace(in.Interest))) {
		return Contact{}, ErrInvalidInput
	}

	now := s.now()
	c := Contact{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Interest:  Interest(strings.TrimSpace(in.Interest)),
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Contact{}, err
	}
	return c, nil
}
