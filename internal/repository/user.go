// Package repository provides persistence implementations for the bookstore services.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/avoronin/bookstore/internal/models"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// PostgresUserRepository implements user persistence using a PostgreSQL database.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the given database connection.
// db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// UserExists checks whether a user with the specified username exists in the database.
// It returns true if the user exists, false otherwise.
// If an error occurs during the query, it is returned.
func (r *PostgresUserRepository) UserExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username,
	).Scan(&exists)
	return exists, err
}

// CreateUser inserts a new user with a generated ID and returns the created record.
// A username collision surfaces as models.ErrDuplicateUsername; the unique
// constraint on users.username serializes concurrent registrations.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, username, passwordHash string, role models.Role) (*models.User, error) {
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO users (id, username, password_hash, role) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.PasswordHash, string(user.Role),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, models.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return user, nil
}

// GetUserByUsername fetches a user by username.
// Returns models.ErrNotFound if no such user exists.
func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, username, password_hash, role FROM users WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return &user, nil
}
