package caretips_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "pawkind/internal/adapters/storage/memory"
	"pawkind/internal/domain/caretips"
)

func TestCreate_CategoryOptionalButValidated(t *testing.T) {
	svc := caretips.NewService(mem.NewCareTipRepo())
	ctx := context.Background()

	// Sin categoría: válido.
	tip, err := svc.Create(ctx, caretips.CreateInput{
		Title:   "Safe Environment",
		Content: "Create a safe space.",
		Icon:    "fas fa-home",
	})
	require.NoError(t, err)
	assert.Empty(t, tip.Category)

	// Categoría fuera del enum: inválido.
	_, err = svc.Create(ctx, caretips.CreateInput{
		Title:    "Bad",
		Content:  "c",
		Icon:     "i",
		Category: "astrology",
	})
	assert.ErrorIs(t, err, caretips.ErrInvalidInput)
}

func TestList_InsertionOrder(t *testing.T) {
	repo := mem.NewCareTipRepo()
	svc := caretips.NewService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, caretips.CreateInput{Title: "Nutrition", Content: "a", Icon: "i1", Category: "nutrition"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, caretips.CreateInput{Title: "Grooming", Content: "b", Icon: "i2", Category: "grooming"})
	require.NoError(t, err)

	out, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, first.ID, out[0].ID)
	assert.Equal(t, second.ID, out[1].ID)
}
