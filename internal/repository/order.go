package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/avoronin/bookstore/internal/models"
)

// PostgresOrderRepository implements order persistence against a PostgreSQL database.
type PostgresOrderRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository using the provided *sql.DB.
// db must be a valid connection to a PostgreSQL instance.
func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

// Create inserts a new order with a generated ID and returns the stored record.
func (r *PostgresOrderRepository) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO orders (id, name, email, city, country, state, zipcode, phone, product_ids, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, order.ID, order.Name, order.Email, order.Address.City, order.Address.Country,
		order.Address.State, order.Address.Zipcode, order.Phone,
		pq.Array(order.ProductIDs), order.TotalPrice, order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &order, nil
}

// GetByEmail fetches all orders placed by the given customer email, newest first.
func (r *PostgresOrderRepository) GetByEmail(ctx context.Context, email string) ([]models.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, city, country, state, zipcode, phone, product_ids, total_price, created_at
		FROM orders WHERE email = $1 ORDER BY created_at DESC
	`, email)
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// GetAll fetches every order, newest first.
func (r *PostgresOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, city, country, state, zipcode, phone, product_ids, total_price, created_at
		FROM orders ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("GetAll: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows *sql.Rows) ([]models.Order, error) {
	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.Address.City, &o.Address.Country,
			&o.Address.State, &o.Address.Zipcode, &o.Phone,
			pq.Array(&o.ProductIDs), &o.TotalPrice, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
