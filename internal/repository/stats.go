package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avoronin/bookstore/internal/models"
)

// PostgresStatsRepository computes admin dashboard aggregates against a PostgreSQL database.
type PostgresStatsRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresStatsRepository creates a new PostgresStatsRepository using the provided *sql.DB.
func NewPostgresStatsRepository(db *sql.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{DB: db}
}

// Totals returns the aggregate order and catalog figures in a single query.
func (r *PostgresStatsRepository) Totals(ctx context.Context) (*models.StatsTotals, error) {
	var t models.StatsTotals
	err := r.DB.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COALESCE(SUM(total_price), 0) FROM orders),
			(SELECT COUNT(*) FROM books WHERE trending = true AND deleted = false),
			(SELECT COUNT(*) FROM books WHERE deleted = false)
	`).Scan(&t.TotalOrders, &t.TotalSales, &t.TrendingBooks, &t.TotalBooks)
	if err != nil {
		return nil, fmt.Errorf("Totals: %w", err)
	}
	return &t, nil
}

// MonthlySales returns per-month sales totals and order counts, oldest month first.
func (r *PostgresStatsRepository) MonthlySales(ctx context.Context) ([]models.MonthlySales, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT to_char(created_at, 'YYYY-MM') AS month,
		       COALESCE(SUM(total_price), 0),
		       COUNT(*)
		FROM orders GROUP BY month ORDER BY month
	`)
	if err != nil {
		return nil, fmt.Errorf("MonthlySales: %w", err)
	}
	defer rows.Close()

	var sales []models.MonthlySales
	for rows.Next() {
		var m models.MonthlySales
		if err := rows.Scan(&m.Month, &m.TotalSales, &m.TotalOrders); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		sales = append(sales, m)
	}
	return sales, rows.Err()
}
