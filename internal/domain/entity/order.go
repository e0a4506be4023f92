// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the processing state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial status of every placed order.
	OrderStatusPending OrderStatus = "pending"
)

// Order is a branch's purchase against one or more suppliers.
// Line items and prices are immutable once created.
type Order struct {
	ID           uuid.UUID       `json:"id"`
	BranchID     uuid.UUID       `json:"branchId"`
	SupplierID   *uuid.UUID      `json:"supplierId,omitempty"` // Optional supplier the order was addressed to.
	Items        []OrderItem     `json:"products"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	DeliveryDate time.Time       `json:"deliveryDate"`
	DeliveryArea string          `json:"deliveryArea,omitempty"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// OrderItem is one (product, quantity) line of an order with the unit price
// snapshotted at creation.
type OrderItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// LineItem is a requested (product, quantity) pair before pricing.
type LineItem struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
}

// PricedItem is a line item resolved against the catalog.
type PricedItem struct {
	ProductID  uuid.UUID       `json:"productId"`
	SupplierID uuid.UUID       `json:"supplierId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

// PricedOrder is the result of pricing a list of line items.
type PricedOrder struct {
	Total decimal.Decimal `json:"total"`
	Items []PricedItem    `json:"items"`
}

// SupplierIDs returns the distinct suppliers of the priced items in first-seen order.
func (p *PricedOrder) SupplierIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(p.Items))
	ids := make([]uuid.UUID, 0, len(p.Items))
	for _, item := range p.Items {
		if _, ok := seen[item.SupplierID]; ok {
			continue
		}
		seen[item.SupplierID] = struct{}{}
		ids = append(ids, item.SupplierID)
	}

	return ids
}

// OrderItems converts priced items into the immutable order lines.
func (p *PricedOrder) OrderItems() []OrderItem {
	items := make([]OrderItem, len(p.Items))
	for i, item := range p.Items {
		items[i] = OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return items
}
