package adoptions

import "context"

type Repository interface {
	// Create inserta el registro de adopción Y marca la mascota como
	// adoptada en un solo paso atómico donde el store lo soporte.
	// Un petId inexistente no es error: el flip afecta cero filas y la
	// adopción queda registrada igual (contrato observable del endpoint).
	Create(ctx context.Context, a Adoption) error

	Count(ctx context.Context) (int, error)
}
