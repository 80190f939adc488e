package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"restaurant-admin/internal/domain"
)

type orderRepoStub struct {
	employee   domain.Employee
	employeeOK bool
	order      domain.Order
	orderOK    bool
	item       domain.MenuItem
	itemOK     bool

	createdOrders []domain.OrderCreateRequest
	addedItems    []domain.OrderItemRequest
	snapPrices    []float64
	tips          []float64
	totalAfterAdd float64
}

func (s *orderRepoStub) GetEmployee(ctx context.Context, id int64) (domain.Employee, bool, error) {
	return s.employee, s.employeeOK, nil
}

func (s *orderRepoStub) GetOrder(ctx context.Context, id int64) (domain.Order, bool, error) {
	return s.order, s.orderOK, nil
}

func (s *orderRepoStub) GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, bool, error) {
	return s.item, s.itemOK, nil
}

func (s *orderRepoStub) CreateOrder(ctx context.Context, req domain.OrderCreateRequest, date, tm string) (int64, error) {
	s.createdOrders = append(s.createdOrders, req)
	return 42, nil
}

func (s *orderRepoStub) AddOrderItem(ctx context.Context, req domain.OrderItemRequest, unitPrice, taxRate float64) (float64, error) {
	s.addedItems = append(s.addedItems, req)
	s.snapPrices = append(s.snapPrices, unitPrice)
	return s.totalAfterAdd, nil
}

func (s *orderRepoStub) SetTip(ctx context.Context, orderID int64, amount float64) (float64, error) {
	s.tips = append(s.tips, amount)
	return s.order.Subtotal + s.order.Tax + amount, nil
}

func newOrderFixture() (*OrderService, *orderRepoStub) {
	repo := &orderRepoStub{
		employee:   domain.Employee{ID: 5, FirstName: "Maya", LastName: "Cole", Role: domain.RoleServer},
		employeeOK: true,
		order:      domain.Order{ID: 42, Status: domain.OrderOpen},
		orderOK:    true,
		item:       domain.MenuItem{ID: 9, Name: "Grilled Salmon", Price: 28.99, Available: true},
		itemOK:     true,
	}
	svc := NewOrderService(repo, nil, 0.08, zerolog.Nop())
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)
	}
	return svc, repo
}

func TestCreateOrder(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		svc, repo := newOrderFixture()
		_, err := svc.Create(context.Background(), domain.OrderCreateRequest{
			EmployeeID: 5, Type: "Delivery",
		})
		var verr *domain.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Empty(t, repo.createdOrders)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc, repo := newOrderFixture()
		repo.employeeOK = false
		_, err := svc.Create(context.Background(), domain.OrderCreateRequest{
			EmployeeID: 5, Type: domain.OrderDineIn,
		})
		var nf *domain.NotFoundError
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("cook warned but not rejected", func(t *testing.T) {
		svc, repo := newOrderFixture()
		repo.employee.Role = domain.RoleCook
		conf, err := svc.Create(context.Background(), domain.OrderCreateRequest{
			EmployeeID: 5, Type: domain.OrderTakeout,
		})
		assert.NoError(t, err)
		assert.Len(t, repo.createdOrders, 1)
		assert.Len(t, conf.Warnings, 1)
	})

	t.Run("opens with status Open", func(t *testing.T) {
		svc, _ := newOrderFixture()
		conf, err := svc.Create(context.Background(), domain.OrderCreateRequest{
			EmployeeID: 5, Type: domain.OrderBar,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderOpen, conf.Status)
		assert.Equal(t, "Maya Cole", conf.ServerName)
		assert.Empty(t, conf.Warnings)
	})
}

func TestAddOrderItem(t *testing.T) {
	t.Run("quantity below one", func(t *testing.T) {
		svc, repo := newOrderFixture()
		_, err := svc.AddItem(context.Background(), domain.OrderItemRequest{
			OrderID: 42, ItemID: 9, Quantity: 0,
		})
		var verr *domain.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Empty(t, repo.addedItems, "subtotal must be unchanged")
	})

	t.Run("unknown order", func(t *testing.T) {
		svc, repo := newOrderFixture()
		repo.orderOK = false
		_, err := svc.AddItem(context.Background(), domain.OrderItemRequest{
			OrderID: 42, ItemID: 9, Quantity: 1,
		})
		var nf *domain.NotFoundError
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("completed order rejects items", func(t *testing.T) {
		svc, repo := newOrderFixture()
		repo.order.Status = domain.OrderCompleted
		_, err := svc.AddItem(context.Background(), domain.OrderItemRequest{
			OrderID: 42, ItemID: 9, Quantity: 1,
		})
		var conflict *domain.ConflictError
		assert.True(t, errors.As(err, &conflict))
		assert.Empty(t, repo.addedItems, "order_items count must be unchanged")
	})

	t.Run("cancelled order rejects items", func(t *testing.T) {
		svc, repo := newOrderFixture()
		repo.order.Status = domain.OrderCancelled
		_, err := svc.AddItem(context.Background(), domain.OrderItemRequest{
			OrderID: 42, ItemID: 9, Quantity: 1,
		})
		var conflict *domain.ConflictError
		assert.True(t, errors.As(err, &conflict))
	})

	t.Run("unknown menu item", func(t *testing.T) {
		svc, repo := newOrderFixture()
		repo.itemOK = false
		_, err := svc.AddItem(context.Background(), domain.OrderItemRequest{
			OrderID: 42, ItemID: 9, Quantity: 1,
		})
		var nf *domain.NotFoundError
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("unavailable item requires override", func(t *testing.T) {
		svc, repo := newOrderFixture()
		repo.item.Available = false
		_, err := svc.AddItem(context.Background(), domain.OrderItemRequest{
			OrderID: 42, ItemID: 9, Quantity: 1,
		})
		var ov *domain.OverrideRequiredError
		assert.True(t, errors.As(err, &ov))
		assert.Empty(t, repo.addedItems)

		res, err := svc.AddItem(context.Background(), domain.OrderItemRequest{
			OrderID: 42, ItemID: 9, Quantity: 1, Force: true,
		})
		assert.NoError(t, err)
		assert.Len(t, repo.addedItems, 1)
		assert.Len(t, res.Warnings, 1)
	})

	t.Run("captures price snapshot", func(t *testing.T) {
		svc, repo := newOrderFixture()
		repo.totalAfterAdd = 62.62
		res, err := svc.AddItem(context.Background(), domain.OrderItemRequest{
			OrderID: 42, ItemID: 9, Quantity: 2,
		})
		assert.NoError(t, err)
		assert.Equal(t, []float64{28.99}, repo.snapPrices)
		assert.Equal(t, 28.99, res.UnitPrice)
		assert.InDelta(t, 57.98, res.ItemTotal, 1e-9)
		assert.Equal(t, 62.62, res.NewOrderTotal)
	})
}

func TestSetTip(t *testing.T) {
	t.Run("negative tip", func(t *testing.T) {
		svc, _ := newOrderFixture()
		_, err := svc.SetTip(context.Background(), 42, -5)
		var verr *domain.ValidationError
		assert.True(t, errors.As(err, &verr))
	})

	t.Run("rejected on open order", func(t *testing.T) {
		svc, _ := newOrderFixture()
		_, err := svc.SetTip(context.Background(), 42, 10)
		var conflict *domain.ConflictError
		assert.True(t, errors.As(err, &conflict))
	})

	t.Run("folded into total on completed order", func(t *testing.T) {
		svc, repo := newOrderFixture()
		repo.order.Status = domain.OrderCompleted
		repo.order.Subtotal = 100
		repo.order.Tax = 8
		total, err := svc.SetTip(context.Background(), 42, 20)
		assert.NoError(t, err)
		assert.Equal(t, 128.0, total)
		assert.Equal(t, []float64{20}, repo.tips)
	})
}
