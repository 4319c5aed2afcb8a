package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pawkind/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, name, type, age, bio,
			emoji, image, adopted,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		p.ID,
		p.Name,
		string(p.Type),
		p.Age,
		p.Bio,
		p.Emoji,
		toNullString(p.Image),
		p.Adopted,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, type, age, bio,
			emoji, image, adopted,
			created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListUnadopted(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, type, age, bio,
			emoji, image, adopted,
			created_at, updated_at
		FROM pets
		WHERE adopted = false
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// MarkAdopted con id inexistente afecta cero filas y NO devuelve error:
// el endpoint de adopciones no valida existencia del petId.
func (r *PetsRepo) MarkAdopted(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET adopted = true, updated_at = $2
		WHERE id = $1
	`, id, at)
	return err
}

func (r *PetsRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM pets`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var typ string
	var image sql.NullString
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&typ,
		&p.Age,
		&p.Bio,
		&p.Emoji,
		&image,
		&p.Adopted,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Type = pets.PetType(typ)
	if image.Valid {
		p.Image = image.String
	}
	return p, nil
}
