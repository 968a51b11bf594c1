// Package http provides HTTP handlers for orders.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avoronin/bookstore/internal/models"
)

// OrderService defines the interface for order operations
// required by the OrderHandler.
type OrderService interface {
	// Create places a new order and returns it with its assigned ID.
	Create(ctx context.Context, order models.Order) (*models.Order, error)
	// GetByEmail retrieves the order history for a customer.
	GetByEmail(ctx context.Context, email string) ([]models.Order, error)
	// GetAll retrieves every order in the store.
	GetAll(ctx context.Context) ([]models.Order, error)
}

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	OrderService OrderService
}

// Create handles POST /api/orders (authenticated).
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil ||
		order.Email == "" || len(order.ProductIDs) == 0 {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	created, err := h.OrderService.Create(r.Context(), order)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetByEmail handles GET /api/orders/email/{email} (authenticated).
func (h *OrderHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	orders, err := h.OrderService.GetByEmail(r.Context(), email)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetAll handles GET /api/orders (admin only).
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.OrderService.GetAll(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}
