// Package events publishes order lifecycle events to RabbitMQ for
// downstream consumers (fulfilment, notifications). Publishing is
// best-effort: a broker outage never fails a checkout.
package events

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/ojohpeters/Farmers-marketplace/models"
)

const (
	ExchangeName    = "orders"
	OrderCreatedKey = "order.created"
)

// OrderEvent is the payload emitted when a checkout commits.
type OrderEvent struct {
	OrderID    uint               `json:"order_id"`
	TrackingID string             `json:"tracking_id"`
	UserID     string             `json:"user_id"`
	Total      float64            `json:"total"`
	Status     models.OrderStatus `json:"status"`
}

// Publisher pushes order events onto a topic exchange. A nil *Publisher is
// a no-op, so the broker stays optional.
type Publisher struct {
	ch *amqp.Channel
}

func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &Publisher{ch: ch}, nil
}

func (p *Publisher) OrderCreated(ctx context.Context, order *models.Order) {
	if p == nil || p.ch == nil {
		return
	}
	body, err := json.Marshal(OrderEvent{
		OrderID:    order.ID,
		TrackingID: order.TrackingID,
		UserID:     order.UserID,
		Total:      order.Total,
		Status:     order.Status,
	})
	if err != nil {
		return
	}
	err = p.ch.PublishWithContext(ctx,
		ExchangeName,
		OrderCreatedKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Printf("⚠️ Failed to publish %s event for order %s: %v", OrderCreatedKey, order.TrackingID, err)
	}
}
