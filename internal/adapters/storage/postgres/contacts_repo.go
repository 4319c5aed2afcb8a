package postgres

import (
	"context"
	"database/sql"

	"pawkind/internal/domain/contacts"
)

type ContactsRepo struct {
	db *sql.DB
}

func NewContactsRepo(db *sql.DB) *ContactsRepo {
	return &ContactsRepo{db: db}
}

// Create es la única operación: los contactos son un log append-only.
func (r *ContactsRepo) Create(ctx context.Context, c contacts.Contact) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contacts (
			id, name, email, interest, message,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		c.ID,
		c.Name,
		c.Email,
		string(c.Interest),
		toNullString(c.Message),
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}
