package postgres

import (
	"context"
	"database/sql"

	"pawkind/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

// Create inserta la adopción y flipea pets.adopted en UNA transacción:
// no puede quedar una adopción registrada sin el flip (ni al revés).
// El UPDATE con petId inexistente afecta cero filas y no es error.
func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO adoptions (
			id, pet_id, user_name, pet_name, status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		a.ID,
		a.PetID,
		a.UserName,
		a.PetName,
		string(a.Status),
		a.CreatedAt,
		a.UpdatedAt,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE pets
		SET adopted = true, updated_at = $2
		WHERE id = $1
	`, a.PetID, a.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *AdoptionsRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM adoptions`).Scan(&n)
	return n, err
}
