package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"restaurant-admin/internal/domain"
)

type OrderRepositoryInterface interface {
	GetEmployee(ctx context.Context, id int64) (domain.Employee, bool, error)
	GetOrder(ctx context.Context, id int64) (domain.Order, bool, error)
	GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, bool, error)
	CreateOrder(ctx context.Context, req domain.OrderCreateRequest, date, tm string) (int64, error)
	AddOrderItem(ctx context.Context, req domain.OrderItemRequest, unitPrice, taxRate float64) (float64, error)
	SetTip(ctx context.Context, orderID int64, amount float64) (float64, error)
}

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepositoryInterface {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetEmployee(ctx context.Context, id int64) (domain.Employee, bool, error) {
	var e domain.Employee
	var role string
	err := r.db.QueryRowContext(ctx, `
		SELECT employee_id, first_name, last_name, role,
		       COALESCE(phone,''), COALESCE(email,''),
		       to_char(hire_date, 'YYYY-MM-DD'), hourly_wage, manager_id
		FROM employees WHERE employee_id = $1
	`, id).Scan(&e.ID, &e.FirstName, &e.LastName, &role, &e.Phone, &e.Email,
		&e.HireDate, &e.HourlyWage, &e.ManagerID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Employee{}, false, nil
	}
	if err != nil {
		return domain.Employee{}, false, fmt.Errorf("get employee: %w", err)
	}
	e.Role = domain.Role(role)
	return e, true, nil
}

func (r *OrderRepository) GetOrder(ctx context.Context, id int64) (domain.Order, bool, error) {
	var o domain.Order
	var typ, status string
	err := r.db.QueryRowContext(ctx, `
		SELECT order_id, customer_id, employee_id, table_id, order_type, status,
		       to_char(order_date, 'YYYY-MM-DD'), to_char(order_time, 'HH24:MI'),
		       subtotal, tax, tip, total
		FROM orders WHERE order_id = $1
	`, id).Scan(&o.ID, &o.CustomerID, &o.EmployeeID, &o.TableID, &typ, &status,
		&o.Date, &o.Time, &o.Subtotal, &o.Tax, &o.Tip, &o.Total)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, false, nil
	}
	if err != nil {
		return domain.Order{}, false, fmt.Errorf("get order: %w", err)
	}
	o.Type = domain.OrderType(typ)
	o.Status = domain.OrderStatus(status)
	return o, true, nil
}

func (r *OrderRepository) GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, bool, error) {
	var m domain.MenuItem
	err := r.db.QueryRowContext(ctx, `
		SELECT item_id, name, COALESCE(description,''), price, category_id, is_available
		FROM menu_items WHERE item_id = $1
	`, id).Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.CategoryID, &m.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MenuItem{}, false, nil
	}
	if err != nil {
		return domain.MenuItem{}, false, fmt.Errorf("get menu item: %w", err)
	}
	return m, true, nil
}

func (r *OrderRepository) CreateOrder(ctx context.Context, req domain.OrderCreateRequest, date, tm string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, employee_id, table_id, order_type, status, order_date, order_time)
		VALUES ($1, $2, $3, $4, 'Open', $5::date, $6::time)
		RETURNING order_id
	`, req.CustomerID, req.EmployeeID, req.TableID, string(req.Type), date, tm).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// AddOrderItem inserts the line item with its price snapshot and recomputes
// the order totals, all in one transaction. The engine has no cross-table
// generated columns, so the recompute is an explicit statement:
// subtotal = sum(quantity * unit_price), tax = subtotal * rate,
// total = subtotal + tax + tip.
func (r *OrderRepository) AddOrderItem(ctx context.Context, req domain.OrderItemRequest, unitPrice, taxRate float64) (float64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_items (order_id, item_id, quantity, unit_price, special_instructions)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
	`, req.OrderID, req.ItemID, req.Quantity, unitPrice, req.Notes)
	if err != nil {
		return 0, fmt.Errorf("insert order item: %w", err)
	}

	var total float64
	err = tx.QueryRowContext(ctx, `
		UPDATE orders o SET
		    subtotal = s.sub,
		    tax      = ROUND(s.sub * $2::numeric, 2),
		    total    = s.sub + ROUND(s.sub * $2::numeric, 2) + o.tip
		FROM (
		    SELECT COALESCE(SUM(quantity * unit_price), 0) AS sub
		    FROM order_items WHERE order_id = $1
		) s
		WHERE o.order_id = $1
		RETURNING o.total
	`, req.OrderID, taxRate).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("recompute order totals: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return total, nil
}

func (r *OrderRepository) SetTip(ctx context.Context, orderID int64, amount float64) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `
		UPDATE orders
		SET tip = $2, total = subtotal + tax + $2
		WHERE order_id = $1
		RETURNING total
	`, orderID, amount).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("set tip: %w", err)
	}
	return total, nil
}
