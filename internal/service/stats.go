package service

import (
	"context"

	"github.com/avoronin/bookstore/internal/models"
)

// StatsRepository defines the aggregate queries needed by the StatsService.
type StatsRepository interface {
	// Totals returns the aggregate order and catalog figures.
	Totals(ctx context.Context) (*models.StatsTotals, error)
	// MonthlySales returns per-month sales figures, oldest month first.
	MonthlySales(ctx context.Context) ([]models.MonthlySales, error)
}

// Stats is the combined payload served to the admin dashboard.
type Stats struct {
	models.StatsTotals
	MonthlySales []models.MonthlySales `json:"monthlySales"`
}

// StatsService assembles admin dashboard statistics.
type StatsService struct {
	// repo is the underlying aggregate repository.
	repo StatsRepository
}

// NewStatsService constructs a StatsService with the provided StatsRepository.
func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Collect gathers the totals and monthly sales into a single payload.
func (s *StatsService) Collect(ctx context.Context) (*Stats, error) {
	totals, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	monthly, err := s.repo.MonthlySales(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{StatsTotals: *totals, MonthlySales: monthly}, nil
}
