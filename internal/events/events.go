// Package events publishes order lifecycle events to the message broker.
// Publishing is best-effort: the database transaction has already
// committed, so a broker failure is logged by the caller, never surfaced
// as an operation failure.
package events

import (
	"context"
	"encoding/json"
	"time"

	"restaurant-admin/internal/connections/rabbitmq"
	"restaurant-admin/internal/domain"
)

const publishTTL = 5 * time.Second

type OrderCreated struct {
	OrderID    int64            `json:"order_id"`
	EmployeeID int64            `json:"employee_id"`
	OrderType  domain.OrderType `json:"order_type"`
	Date       string           `json:"date"`
	Time       string           `json:"time"`
}

type OrderItemAdded struct {
	OrderID    int64   `json:"order_id"`
	ItemID     int64   `json:"item_id"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	OrderTotal float64 `json:"order_total"`
}

// Publisher is nil-safe: a nil Publisher drops every event, which is the
// configured state when no broker URL is set.
type Publisher struct {
	client *rabbitmq.Client
}

func NewPublisher(client *rabbitmq.Client) *Publisher {
	if client == nil {
		return nil
	}
	return &Publisher{client: client}
}

func (p *Publisher) OrderCreated(ctx context.Context, evt OrderCreated) error {
	return p.publish(ctx, "orders.created", evt)
}

func (p *Publisher) OrderItemAdded(ctx context.Context, evt OrderItemAdded) error {
	return p.publish(ctx, "orders.item_added", evt)
}

func (p *Publisher) publish(ctx context.Context, key string, evt any) error {
	if p == nil {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	pctx, cancel := context.WithTimeout(ctx, publishTTL)
	defer cancel()
	return p.client.Publish(pctx, key, body)
}
