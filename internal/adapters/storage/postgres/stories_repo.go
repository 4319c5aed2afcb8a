package postgres

import (
	"context"
	"database/sql"

	"pawkind/internal/domain/stories"
)

type StoriesRepo struct {
	db *sql.DB
}

func NewStoriesRepo(db *sql.DB) *StoriesRepo {
	return &StoriesRepo{db: db}
}

func (r *StoriesRepo) Create(ctx context.Context, s stories.SuccessStory) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO success_stories (
			id, name, story, emoji, image,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		s.ID,
		s.Name,
		s.Story,
		s.Emoji,
		toNullString(s.Image),
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *StoriesRepo) List(ctx context.Context) ([]stories.SuccessStory, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, story, emoji, image,
			created_at, updated_at
		FROM success_stories
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]stories.SuccessStory, 0)
	for rows.Next() {
		var s stories.SuccessStory
		var image sql.NullString
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Story,
			&s.Emoji,
			&image,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if image.Valid {
			s.Image = image.String
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *StoriesRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM success_stories`).Scan(&n)
	return n, err
}
