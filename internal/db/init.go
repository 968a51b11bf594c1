package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Admin accounts are provisioned out-of-band with a direct insert, e.g.:
//
//	INSERT INTO users (id, username, password_hash, role)
//	VALUES (gen_random_uuid()::text, 'admin', '<bcrypt hash>', 'admin');
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'user'
);

CREATE TABLE IF NOT EXISTS books (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    category TEXT,
    trending BOOLEAN NOT NULL DEFAULT FALSE,
    cover_image TEXT,
    old_price DOUBLE PRECISION NOT NULL DEFAULT 0,
    new_price DOUBLE PRECISION NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    deleted BOOLEAN NOT NULL DEFAULT FALSE,
    deleted_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS orders (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    city TEXT,
    country TEXT,
    state TEXT,
    zipcode TEXT,
    phone TEXT,
    product_ids TEXT[] NOT NULL,
    total_price DOUBLE PRECISION NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}
