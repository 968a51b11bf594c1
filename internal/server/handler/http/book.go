// Package http provides HTTP handlers for the book catalog.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avoronin/bookstore/internal/models"
)

// BookService defines the interface for catalog operations
// required by the BookHandler.
type BookService interface {
	// Create inserts a new book and returns it with its assigned ID.
	Create(ctx context.Context, book models.Book) (*models.Book, error)
	// GetAll retrieves the full catalog, newest first.
	GetAll(ctx context.Context) ([]models.Book, error)
	// GetByID fetches a single book by ID.
	GetByID(ctx context.Context, id string) (*models.Book, error)
	// Update rewrites an existing book's fields.
	Update(ctx context.Context, book models.Book) error
	// Delete removes a book from the catalog.
	Delete(ctx context.Context, id string) error
}

// BookHandler handles HTTP requests for the book catalog.
type BookHandler struct {
	BookService BookService
}

// Create handles POST /api/books (admin only).
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil || book.Title == "" {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	created, err := h.BookService.Create(r.Context(), book)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to create book")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetAll handles GET /api/books.
func (h *BookHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	books, err := h.BookService.GetAll(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch books")
		return
	}
	if books == nil {
		books = []models.Book{}
	}
	writeJSON(w, http.StatusOK, books)
}

// GetByID handles GET /api/books/{id}.
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	book, err := h.BookService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Book not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch book")
		return
	}

	writeJSON(w, http.StatusOK, book)
}

// Update handles PUT /api/books/{id} (admin only).
// The ID in the URL wins over any ID in the body.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil || book.Title == "" {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	book.ID = chi.URLParam(r, "id")

	if err := h.BookService.Update(r.Context(), book); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Book not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to update book")
		return
	}

	writeMessage(w, http.StatusOK, "Book updated successfully")
}

// Delete handles DELETE /api/books/{id} (admin only).
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.BookService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Book not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to delete book")
		return
	}

	writeMessage(w, http.StatusOK, "Book deleted successfully")
}
