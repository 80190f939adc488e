package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"restaurant-admin/internal/domain"
	"restaurant-admin/internal/events"
	"restaurant-admin/internal/repository"
)

type OrderService struct {
	repo    repository.OrderRepositoryInterface
	pub     *events.Publisher
	lg      zerolog.Logger
	taxRate float64
	now     func() time.Time
}

func NewOrderService(repo repository.OrderRepositoryInterface, pub *events.Publisher, taxRate float64, lg zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, pub: pub, lg: lg, taxRate: taxRate, now: time.Now}
}

// Create opens a new order with status Open and the current date/time as
// creation metadata.
func (s *OrderService) Create(ctx context.Context, req domain.OrderCreateRequest) (domain.OrderConfirmation, error) {
	var zero domain.OrderConfirmation

	if !req.Type.Valid() {
		return zero, domain.Validationf("invalid order type %q: use Dine-In, Takeout, or Bar", req.Type)
	}

	employee, ok, err := s.repo.GetEmployee(ctx, req.EmployeeID)
	if err != nil {
		return zero, domain.Storage("lookup employee", err)
	}
	if !ok {
		return zero, &domain.NotFoundError{Entity: "employee", ID: req.EmployeeID}
	}

	var warnings []string
	if !employee.Role.CanTakeOrders() {
		warning := fmt.Sprintf("%s is a %s, not a server", employee.FullName(), employee.Role)
		s.lg.Warn().Int64("employee_id", employee.ID).Str("role", string(employee.Role)).Msg(warning)
		warnings = append(warnings, warning)
	}

	now := s.now()
	date := now.Format(dateLayout)
	tm := now.Format(timeLayout)

	id, err := s.repo.CreateOrder(ctx, req, date, tm)
	if err != nil {
		return zero, domain.Storage("create order", err)
	}

	if err := s.pub.OrderCreated(ctx, events.OrderCreated{
		OrderID:    id,
		EmployeeID: employee.ID,
		OrderType:  req.Type,
		Date:       date,
		Time:       tm,
	}); err != nil {
		s.lg.Error().Err(err).Int64("order_id", id).Msg("failed to publish order event")
	}

	s.lg.Info().Int64("order_id", id).Str("type", string(req.Type)).Msg("order created")

	return domain.OrderConfirmation{
		ID:         id,
		ServerName: employee.FullName(),
		Type:       req.Type,
		Status:     domain.OrderOpen,
		Warnings:   warnings,
	}, nil
}

// AddItem appends a line item to an open order, capturing the menu price
// at order time. Later menu price changes never alter the snapshot.
func (s *OrderService) AddItem(ctx context.Context, req domain.OrderItemRequest) (domain.OrderItemResult, error) {
	var zero domain.OrderItemResult

	if req.Quantity < 1 {
		return zero, domain.Validationf("quantity must be at least 1")
	}

	order, ok, err := s.repo.GetOrder(ctx, req.OrderID)
	if err != nil {
		return zero, domain.Storage("lookup order", err)
	}
	if !ok {
		return zero, &domain.NotFoundError{Entity: "order", ID: req.OrderID}
	}
	if order.Status.Closed() {
		return zero, &domain.ConflictError{
			Reason: fmt.Sprintf("cannot modify %s order %d", order.Status, order.ID),
		}
	}

	item, ok, err := s.repo.GetMenuItem(ctx, req.ItemID)
	if err != nil {
		return zero, domain.Storage("lookup menu item", err)
	}
	if !ok {
		return zero, &domain.NotFoundError{Entity: "menu item", ID: req.ItemID}
	}

	var warnings []string
	if !item.Available {
		warning := fmt.Sprintf("%s is currently unavailable", item.Name)
		if !req.Force {
			return zero, &domain.OverrideRequiredError{Warning: warning}
		}
		s.lg.Warn().Int64("item_id", item.ID).Msg(warning)
		warnings = append(warnings, warning)
	}

	newTotal, err := s.repo.AddOrderItem(ctx, req, item.Price, s.taxRate)
	if err != nil {
		return zero, domain.Storage("add order item", err)
	}

	if err := s.pub.OrderItemAdded(ctx, events.OrderItemAdded{
		OrderID:    req.OrderID,
		ItemID:     item.ID,
		ItemName:   item.Name,
		Quantity:   req.Quantity,
		UnitPrice:  item.Price,
		OrderTotal: newTotal,
	}); err != nil {
		s.lg.Error().Err(err).Int64("order_id", req.OrderID).Msg("failed to publish item event")
	}

	return domain.OrderItemResult{
		ItemName:      item.Name,
		Quantity:      req.Quantity,
		UnitPrice:     item.Price,
		ItemTotal:     float64(req.Quantity) * item.Price,
		NewOrderTotal: newTotal,
		Warnings:      warnings,
	}, nil
}

// SetTip records the tip on a completed order and folds it into the total.
func (s *OrderService) SetTip(ctx context.Context, orderID int64, amount float64) (float64, error) {
	if amount < 0 {
		return 0, domain.Validationf("tip cannot be negative")
	}

	order, ok, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return 0, domain.Storage("lookup order", err)
	}
	if !ok {
		return 0, &domain.NotFoundError{Entity: "order", ID: orderID}
	}
	if order.Status != domain.OrderCompleted {
		return 0, &domain.ConflictError{
			Reason: fmt.Sprintf("tip can only be set on a completed order, order %d is %s", orderID, order.Status),
		}
	}

	total, err := s.repo.SetTip(ctx, orderID, amount)
	if err != nil {
		return 0, domain.Storage("set tip", err)
	}
	return total, nil
}
