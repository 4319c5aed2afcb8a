package postgres

import (
	"context"
	"database/sql"

	"pawkind/internal/domain/caretips"
)

type CareTipsRepo struct {
	db *sql.DB
}

func NewCareTipsRepo(db *sql.DB) *CareTipsRepo {
	return &CareTipsRepo{db: db}
}

func (r *CareTipsRepo) Create(ctx context.Context, t caretips.CareTip) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO care_tips (
			id, title, content, icon, category,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		t.ID,
		t.Title,
		t.Content,
		t.Icon,
		toNullString(string(t.Category)),
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

func (r *CareTipsRepo) List(ctx context.Context) ([]caretips.CareTip, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, title, content, icon, category,
			created_at, updated_at
		FROM care_tips
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]caretips.CareTip, 0)
	for rows.Next() {
		var t caretips.CareTip
		var category sql.NullString
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Content,
			&t.Icon,
			&category,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if category.Valid {
			t.Category = caretips.Category(category.String)
		}
		out = append(out, t)
	}

	return out, rows.Err()
}

func (r *CareTipsRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM care_tips`).Scan(&n)
	return n, err
}
