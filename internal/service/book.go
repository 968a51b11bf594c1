// Package service provides business-logic services for authentication,
// catalog, orders, and admin stats, delegating persistence to repository interfaces.
package service

import (
	"context"

	"github.com/avoronin/bookstore/internal/models"
)

// BookRepository defines the persistence operations needed by the BookService.
type BookRepository interface {
	// Create inserts a new book and returns the stored record with its ID.
	Create(ctx context.Context, book models.Book) (*models.Book, error)
	// GetAll retrieves all non-deleted books, newest first.
	GetAll(ctx context.Context) ([]models.Book, error)
	// GetByID fetches a single book by ID.
	// Returns models.ErrNotFound if the book does not exist.
	GetByID(ctx context.Context, id string) (*models.Book, error)
	// Update rewrites the mutable fields of an existing book.
	Update(ctx context.Context, book models.Book) error
	// SoftDelete marks the book deleted so the cleaner can purge it later.
	SoftDelete(ctx context.Context, id string) error
}

// BookService implements catalog business logic.
type BookService struct {
	// repo is the underlying persistence repository.
	repo BookRepository
}

// NewBookService constructs a BookService with the provided BookRepository.
func NewBookService(repo BookRepository) *BookService {
	return &BookService{repo: repo}
}

// Create adds a new book to the catalog.
func (s *BookService) Create(ctx context.Context, book models.Book) (*models.Book, error) {
	return s.repo.Create(ctx, book)
}

// GetAll returns the full catalog, newest first.
func (s *BookService) GetAll(ctx context.Context) ([]models.Book, error) {
	return s.repo.GetAll(ctx)
}

// GetByID retrieves a single book by its ID.
func (s *BookService) GetByID(ctx context.Context, id string) (*models.Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Update rewrites an existing book's fields.
func (s *BookService) Update(ctx context.Context, book models.Book) error {
	return s.repo.Update(ctx, book)
}

// Delete removes a book from the catalog.
func (s *BookService) Delete(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}
