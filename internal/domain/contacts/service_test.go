package contacts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "pawkind/internal/adapters/storage/memory"
	"pawkind/internal/domain/contacts"
)

func TestCreate_InterestEnum(t *testing.T) {
	svc := contacts.NewService(mem.NewContactRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, contacts.CreateInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Interest: "not-a-real-value",
	})
	assert.ErrorIs(t, err, contacts.ErrInvalidInput)

	c, err := svc.Create(ctx, contacts.CreateInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Interest: "adopt",
	})
	require.NoError(t, err)
	assert.Equal(t, contacts.InterestAdopt, c.Interest)
	assert.NotEmpty(t, c.ID)
}

func TestCreate_MessageOptional(t *testing.T) {
	svc := contacts.NewService(mem.NewContactRepo())

	c, err := svc.Create(context.Background(), contacts.CreateInput{
		Name:     "Luis",
		Email:    "luis@example.com",
		Interest: "volunteer",
	})
	require.NoError(t, err)
	assert.Empty(t, c.Message)
}
