package pets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "pawkind/internal/adapters/storage/memory"
	"pawkind/internal/domain/pets"
)

func TestCreate_Defaults(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo())

	p, err := svc.Create(context.Background(), pets.CreateInput{
		Name: "  Bella  ",
		Type: "dog",
		Age:  "2 years",
		Bio:  "Friendly and energetic.",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Bella", p.Name, "name gets trimmed")
	assert.Equal(t, pets.DefaultEmoji, p.Emoji, "missing emoji falls back to paw print")
	assert.False(t, p.Adopted)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestCreate_Validation(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		in   pets.CreateInput
	}{
		{"missing name", pets.CreateInput{Type: "dog", Age: "1 year", Bio: "b"}},
		{"bad type", pets.CreateInput{Name: "X", Type: "dragon", Age: "1 year", Bio: "b"}},
		{"missing age", pets.CreateInput{Name: "X", Type: "cat", Bio: "b"}},
		{"missing bio", pets.CreateInput{Name: "X", Type: "cat", Age: "1 year"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, pets.ErrInvalidInput)
		})
	}
}

func TestListAvailable_ExcludesAdopted(t *testing.T) {
	repo := mem.NewPetRepo()
	svc := pets.NewService(repo)
	ctx := context.Background()

	a, err := svc.Create(ctx, pets.CreateInput{Name: "A", Type: "dog", Age: "1 year", Bio: "a"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, pets.CreateInput{Name: "B", Type: "cat", Age: "2 years", Bio: "b"})
	require.NoError(t, err)

	require.NoError(t, repo.MarkAdopted(ctx, a.ID, a.CreatedAt))

	out, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, b.ID, out[0].ID)
}

func TestMarkAdopted_UnknownIDIsNoop(t *testing.T) {
	repo := mem.NewPetRepo()
	ctx := context.Background()

	// id inexistente: cero filas afectadas, sin error (semántica que
	// depende el endpoint de adopciones).
	p, err := pets.NewService(repo).Create(ctx, pets.CreateInput{Name: "A", Type: "dog", Age: "1 year", Bio: "a"})
	require.NoError(t, err)

	require.NoError(t, repo.MarkAdopted(ctx, "no-such-id", p.CreatedAt))

	out, err := repo.ListUnadopted(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
