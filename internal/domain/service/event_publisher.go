package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderPlacedEvent is published once an order has been committed
type OrderPlacedEvent struct {
	RequestID    string          `json:"request_id,omitempty"` // For distributed tracing
	OrderID      uuid.UUID       `json:"order_id"`
	BranchID     uuid.UUID       `json:"branch_id"`
	SupplierIDs  []uuid.UUID     `json:"supplier_ids"` // Distinct suppliers of the order's lines
	TotalPrice   decimal.Decimal `json:"total_price"`
	DeliveryDate time.Time       `json:"delivery_date"`
	CreatedAt    time.Time       `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order placed event to downstream consumers
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
