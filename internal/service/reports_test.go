package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-admin/internal/domain"
)

type reportRepoStub struct {
	spending []domain.CustomerSpendingRow
	daily    []domain.DailyRevenueRow

	lastDays  int
	lastLimit int
}

func (s *reportRepoStub) DailyRevenue(ctx context.Context, days int) ([]domain.DailyRevenueRow, error) {
	s.lastDays = days
	return s.daily, nil
}

func (s *reportRepoStub) RevenueByCategory(ctx context.Context) ([]domain.CategoryRevenueRow, error) {
	return nil, nil
}

func (s *reportRepoStub) RevenueByServer(ctx context.Context) ([]domain.ServerRevenueRow, error) {
	return nil, nil
}

func (s *reportRepoStub) PopularItems(ctx context.Context, limit int) ([]domain.PopularItemRow, error) {
	s.lastLimit = limit
	return nil, nil
}

func (s *reportRepoStub) CustomerSpending(ctx context.Context) ([]domain.CustomerSpendingRow, error) {
	return s.spending, nil
}

func (s *reportRepoStub) ListEmployees(ctx context.Context) ([]domain.EmployeeRow, error) {
	return nil, nil
}

func TestAboveAverageCustomers(t *testing.T) {
	repo := &reportRepoStub{
		spending: []domain.CustomerSpendingRow{
			{CustomerID: 3, CustomerName: "C", TotalSpent: 300, OrderCount: 3},
			{CustomerID: 2, CustomerName: "B", TotalSpent: 200, OrderCount: 2},
			{CustomerID: 1, CustomerName: "A", TotalSpent: 100, OrderCount: 1},
		},
	}
	svc := NewReportService(repo)

	out, err := svc.AboveAverageCustomers(context.Background())
	assert.NoError(t, err)
	// average of [100, 200, 300] is 200; the filter is inclusive
	assert.Len(t, out, 2)
	for _, c := range out {
		assert.Equal(t, 200.0, c.AverageSpending)
		assert.GreaterOrEqual(t, c.TotalSpent, 200.0)
	}
}

func TestAboveAverageCustomersEmpty(t *testing.T) {
	svc := NewReportService(&reportRepoStub{})
	out, err := svc.AboveAverageCustomers(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestReportDefaults(t *testing.T) {
	repo := &reportRepoStub{}
	svc := NewReportService(repo)

	_, err := svc.Daily(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, 30, repo.lastDays)

	_, err = svc.Popular(context.Background(), -1)
	assert.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit)
}
