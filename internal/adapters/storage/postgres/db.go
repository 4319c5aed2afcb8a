package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrNotFound = errors.New("not found")
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate crea el schema si no existe. Idempotente: seguro de correr en
// cada arranque.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS pets (
			id          text PRIMARY KEY,
			name        text NOT NULL,
			type        text NOT NULL,
			age         text NOT NULL,
			bio         text NOT NULL,
			emoji       text NOT NULL,
			image       text,
			adopted     boolean NOT NULL DEFAULT false,
			created_at  timestamptz NOT NULL,
			updated_at  timestamptz NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS care_tips (
			id          text PRIMARY KEY,
			title       text NOT NULL,
			content     text NOT NULL,
			icon        text NOT NULL,
			category    text,
			created_at  timestamptz NOT NULL,
			updated_at  timestamptz NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS success_stories (
			id          text PRIMARY KEY,
			name        text NOT NULL,
			story       text NOT NULL,
			emoji       text NOT NULL,
			image       text,
			created_at  timestamptz NOT NULL,
			updated_at  timestamptz NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS contacts (
			id          text PRIMARY KEY,
			name        text NOT NULL,
			email       text NOT NULL,
			interest    text NOT NULL,
			message     text,
			created_at  timestamptz NOT NULL,
			updated_at  timestamptz NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS adoptions (
			id          text PRIMARY KEY,
			pet_id      text NOT NULL,
			user_name   text NOT NULL,
			pet_name    text NOT NULL,
			status      text NOT NULL,
			created_at  timestamptz NOT NULL,
			updated_at  timestamptz NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Pinger expone el estado de conexión del store para /api/health.
type Pinger struct {
	db *sql.DB
}

func NewPinger(db *sql.DB) *Pinger {
	return &Pinger{db: db}
}

func (p *Pinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// toNullString mapea "" a NULL para los campos opcionales.
func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
