package service

import (
	"context"

	"restaurant-admin/internal/domain"
	"restaurant-admin/internal/repository"
)

const (
	defaultReportDays  = 30
	defaultPopularRows = 10
)

type ReportService struct {
	repo repository.ReportRepositoryInterface
}

func NewReportService(repo repository.ReportRepositoryInterface) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) Daily(ctx context.Context, days int) ([]domain.DailyRevenueRow, error) {
	if days <= 0 {
		days = defaultReportDays
	}
	rows, err := s.repo.DailyRevenue(ctx, days)
	if err != nil {
		return nil, domain.Storage("daily revenue report", err)
	}
	return rows, nil
}

func (s *ReportService) ByCategory(ctx context.Context) ([]domain.CategoryRevenueRow, error) {
	rows, err := s.repo.RevenueByCategory(ctx)
	if err != nil {
		return nil, domain.Storage("category revenue report", err)
	}
	return rows, nil
}

func (s *ReportService) ByServer(ctx context.Context) ([]domain.ServerRevenueRow, error) {
	rows, err := s.repo.RevenueByServer(ctx)
	if err != nil {
		return nil, domain.Storage("server revenue report", err)
	}
	return rows, nil
}

func (s *ReportService) Popular(ctx context.Context, limit int) ([]domain.PopularItemRow, error) {
	if limit <= 0 {
		limit = defaultPopularRows
	}
	rows, err := s.repo.PopularItems(ctx, limit)
	if err != nil {
		return nil, domain.Storage("popular items report", err)
	}
	return rows, nil
}

// AboveAverageCustomers returns customers whose completed-order spend is at
// or above the average across all customers with completed orders,
// annotated with that average.
func (s *ReportService) AboveAverageCustomers(ctx context.Context) ([]domain.AboveAverageCustomer, error) {
	rows, err := s.repo.CustomerSpending(ctx)
	if err != nil {
		return nil, domain.Storage("customer spending report", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var sum float64
	for _, r := range rows {
		sum += r.TotalSpent
	}
	avg := sum / float64(len(rows))

	var out []domain.AboveAverageCustomer
	for _, r := range rows {
		if r.TotalSpent >= avg {
			out = append(out, domain.AboveAverageCustomer{
				CustomerSpendingRow: r,
				AverageSpending:     avg,
			})
		}
	}
	return out, nil
}

func (s *ReportService) Employees(ctx context.Context) ([]domain.EmployeeRow, error) {
	rows, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, domain.Storage("employee listing", err)
	}
	return rows, nil
}
