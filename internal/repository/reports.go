package repository

import (
	"context"
	"database/sql"
	"fmt"

	"restaurant-admin/internal/domain"
)

// ReportRepositoryInterface is the fixed set of reporting reads. Every
// query is a side-effect-free aggregation over completed orders.
type ReportRepositoryInterface interface {
	DailyRevenue(ctx context.Context, days int) ([]domain.DailyRevenueRow, error)
	RevenueByCategory(ctx context.Context) ([]domain.CategoryRevenueRow, error)
	RevenueByServer(ctx context.Context) ([]domain.ServerRevenueRow, error)
	PopularItems(ctx context.Context, limit int) ([]domain.PopularItemRow, error)
	CustomerSpending(ctx context.Context) ([]domain.CustomerSpendingRow, error)
	ListEmployees(ctx context.Context) ([]domain.EmployeeRow, error)
}

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) ReportRepositoryInterface {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) DailyRevenue(ctx context.Context, days int) ([]domain.DailyRevenueRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT to_char(order_date, 'YYYY-MM-DD'),
		       COUNT(*),
		       COALESCE(SUM(subtotal), 0),
		       COALESCE(SUM(tax), 0),
		       COALESCE(SUM(tip), 0),
		       COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = 'Completed'
		  AND order_date >= CURRENT_DATE - $1::int
		GROUP BY order_date
		ORDER BY order_date DESC
	`, days)
	if err != nil {
		return nil, fmt.Errorf("daily revenue: %w", err)
	}
	defer rows.Close()

	var out []domain.DailyRevenueRow
	for rows.Next() {
		var d domain.DailyRevenueRow
		if err := rows.Scan(&d.Date, &d.OrderCount, &d.Subtotal, &d.Tax, &d.Tips, &d.Total); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *ReportRepository) RevenueByCategory(ctx context.Context) ([]domain.CategoryRevenueRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.name,
		       COUNT(DISTINCT o.order_id),
		       COALESCE(SUM(oi.quantity), 0),
		       COALESCE(SUM(oi.quantity * oi.unit_price), 0)
		FROM order_items oi
		JOIN menu_items mi ON mi.item_id = oi.item_id
		JOIN categories c ON c.category_id = mi.category_id
		JOIN orders o ON o.order_id = oi.order_id
		WHERE o.status = 'Completed'
		GROUP BY c.name
		ORDER BY SUM(oi.quantity * oi.unit_price) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("revenue by category: %w", err)
	}
	defer rows.Close()

	var out []domain.CategoryRevenueRow
	for rows.Next() {
		var c domain.CategoryRevenueRow
		if err := rows.Scan(&c.Category, &c.OrderCount, &c.ItemsSold, &c.Revenue); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ReportRepository) RevenueByServer(ctx context.Context) ([]domain.ServerRevenueRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.first_name || ' ' || e.last_name,
		       e.role,
		       COUNT(o.order_id),
		       COALESCE(SUM(o.subtotal), 0),
		       COALESCE(SUM(o.tip), 0),
		       COALESCE(SUM(o.total), 0)
		FROM employees e
		JOIN orders o ON o.employee_id = e.employee_id AND o.status = 'Completed'
		GROUP BY e.employee_id, e.first_name, e.last_name, e.role
		ORDER BY SUM(o.total) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("revenue by server: %w", err)
	}
	defer rows.Close()

	var out []domain.ServerRevenueRow
	for rows.Next() {
		var s domain.ServerRevenueRow
		var role string
		if err := rows.Scan(&s.ServerName, &role, &s.OrderCount, &s.GrossSales, &s.TotalTips, &s.TotalRevenue); err != nil {
			return nil, err
		}
		s.Role = domain.Role(role)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ReportRepository) PopularItems(ctx context.Context, limit int) ([]domain.PopularItemRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT mi.name,
		       c.name,
		       COALESCE(SUM(oi.quantity), 0),
		       COALESCE(SUM(oi.quantity * oi.unit_price), 0)
		FROM order_items oi
		JOIN menu_items mi ON mi.item_id = oi.item_id
		JOIN categories c ON c.category_id = mi.category_id
		JOIN orders o ON o.order_id = oi.order_id
		WHERE o.status = 'Completed'
		GROUP BY mi.item_id, mi.name, c.name
		ORDER BY SUM(oi.quantity) DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("popular items: %w", err)
	}
	defer rows.Close()

	var out []domain.PopularItemRow
	for rows.Next() {
		var p domain.PopularItemRow
		if err := rows.Scan(&p.ItemName, &p.Category, &p.TimesOrdered, &p.Revenue); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CustomerSpending aggregates completed-order spend per customer. The
// average and the at-or-above filter are applied by the workflow layer.
func (r *ReportRepository) CustomerSpending(ctx context.Context) ([]domain.CustomerSpendingRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT cu.customer_id,
		       cu.first_name || ' ' || cu.last_name,
		       COALESCE(cu.email, ''),
		       COUNT(o.order_id),
		       COALESCE(SUM(o.total), 0)
		FROM customers cu
		JOIN orders o ON o.customer_id = cu.customer_id AND o.status = 'Completed'
		GROUP BY cu.customer_id, cu.first_name, cu.last_name, cu.email
		ORDER BY SUM(o.total) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("customer spending: %w", err)
	}
	defer rows.Close()

	var out []domain.CustomerSpendingRow
	for rows.Next() {
		var c domain.CustomerSpendingRow
		if err := rows.Scan(&c.CustomerID, &c.CustomerName, &c.Email, &c.OrderCount, &c.TotalSpent); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ReportRepository) ListEmployees(ctx context.Context) ([]domain.EmployeeRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.employee_id,
		       e.first_name || ' ' || e.last_name,
		       e.role,
		       e.hourly_wage,
		       COALESCE(m.first_name || ' ' || m.last_name, '')
		FROM employees e
		LEFT JOIN employees m ON m.employee_id = e.manager_id
		ORDER BY e.role, e.last_name
	`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var out []domain.EmployeeRow
	for rows.Next() {
		var e domain.EmployeeRow
		var role string
		if err := rows.Scan(&e.ID, &e.Name, &role, &e.HourlyWage, &e.ManagerName); err != nil {
			return nil, err
		}
		e.Role = domain.Role(role)
		out = append(out, e)
	}
	return out, rows.Err()
}
