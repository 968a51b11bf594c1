package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func setupStatsMock(t *testing.T) (*PostgresStatsRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresStatsRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestStatsTotals(t *testing.T) {
	repo, mock, cleanup := setupStatsMock(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"orders", "sales", "trending", "books"}).
			AddRow(12, 482.50, 3, 40))

	totals, err := repo.Totals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.TotalOrders != 12 || totals.TotalSales != 482.50 ||
		totals.TrendingBooks != 3 || totals.TotalBooks != 40 {
		t.Errorf("unexpected totals: %+v", totals)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStatsMonthlySales(t *testing.T) {
	repo, mock, cleanup := setupStatsMock(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT to_char`).
		WillReturnRows(sqlmock.NewRows([]string{"month", "sales", "orders"}).
			AddRow("2026-07", 120.0, 4).
			AddRow("2026-08", 362.5, 8))

	sales, err := repo.MonthlySales(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("expected 2 months, got %d", len(sales))
	}
	if sales[0].Month != "2026-07" || sales[1].TotalOrders != 8 {
		t.Errorf("unexpected monthly sales: %+v", sales)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStatsTotals_Error(t *testing.T) {
	repo, mock, cleanup := setupStatsMock(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT`).
		WillReturnError(errors.New("query failed"))

	_, err := repo.Totals(context.Background())
	if err == nil {
		t.Error("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
