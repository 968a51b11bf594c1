package service

import (
	"context"

	"github.com/avoronin/bookstore/internal/models"
)

// OrderRepository defines the persistence operations needed by the OrderService.
type OrderRepository interface {
	// Create inserts a new order and returns the stored record with its ID.
	Create(ctx context.Context, order models.Order) (*models.Order, error)
	// GetByEmail retrieves all orders placed by the given customer email.
	GetByEmail(ctx context.Context, email string) ([]models.Order, error)
	// GetAll retrieves every order.
	GetAll(ctx context.Context) ([]models.Order, error)
}

// OrderService implements order business logic.
type OrderService struct {
	// repo is the underlying persistence repository.
	repo OrderRepository
}

// NewOrderService constructs an OrderService with the provided OrderRepository.
func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Create places a new order.
func (s *OrderService) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	return s.repo.Create(ctx, order)
}

// GetByEmail returns the order history for a customer.
func (s *OrderService) GetByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.repo.GetByEmail(ctx, email)
}

// GetAll returns every order in the store.
func (s *OrderService) GetAll(ctx context.Context) ([]models.Order, error) {
	return s.repo.GetAll(ctx)
}
