// Package repository provides persistence implementations for catalog services
// using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avoronin/bookstore/internal/models"
)

// PostgresBookRepository implements catalog operations against a PostgreSQL database.
type PostgresBookRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresBookRepository creates a new PostgresBookRepository using the provided *sql.DB.
// db must be a valid connection to a PostgreSQL instance.
func NewPostgresBookRepository(db *sql.DB) *PostgresBookRepository {
	return &PostgresBookRepository{DB: db}
}

// Create inserts a new book with a generated ID and returns the stored record.
func (r *PostgresBookRepository) Create(ctx context.Context, book models.Book) (*models.Book, error) {
	book.ID = uuid.NewString()
	book.CreatedAt = time.Now()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO books (id, title, description, category, trending, cover_image, old_price, new_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, book.ID, book.Title, book.Description, book.Category, book.Trending,
		book.CoverImage, book.OldPrice, book.NewPrice, book.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return &book, nil
}

// GetAll fetches all books in the catalog, newest first.
// Soft-deleted books are excluded.
func (r *PostgresBookRepository) GetAll(ctx context.Context) ([]models.Book, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, description, category, trending, cover_image, old_price, new_price, created_at
		FROM books WHERE deleted = false ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("GetAll: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.Category, &b.Trending,
			&b.CoverImage, &b.OldPrice, &b.NewPrice, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// GetByID retrieves a single book by ID.
// Returns models.ErrNotFound if the book does not exist or is soft-deleted.
func (r *PostgresBookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	var b models.Book
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, description, category, trending, cover_image, old_price, new_price, created_at
		FROM books WHERE id = $1 AND deleted = false
	`, id).Scan(&b.ID, &b.Title, &b.Description, &b.Category, &b.Trending,
		&b.CoverImage, &b.OldPrice, &b.NewPrice, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return &b, nil
}

// Update rewrites the mutable fields of an existing book.
// Returns models.ErrNotFound if the book does not exist or is soft-deleted.
func (r *PostgresBookRepository) Update(ctx context.Context, book models.Book) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE books SET title = $2, description = $3, category = $4, trending = $5,
		                 cover_image = $6, old_price = $7, new_price = $8
		WHERE id = $1 AND deleted = false
	`, book.ID, book.Title, book.Description, book.Category, book.Trending,
		book.CoverImage, book.OldPrice, book.NewPrice)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

// SoftDelete marks a book as deleted. The background cleaner purges the row
// after the retention window.
// Returns models.ErrNotFound if the book does not exist or is already deleted.
func (r *PostgresBookRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE books SET deleted = true, deleted_at = now() WHERE id = $1 AND deleted = false
	`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return models.ErrNotFound
	}
	return nil
}
